package domain

import "time"

// FormState is the serializable bookkeeping of one form instance.
type FormState struct {
	Values      FormValues  `json:"values"`
	Errors      FieldErrors `json:"errors"`
	Touched     FieldFlags  `json:"touched"`
	Dirty       FieldFlags  `json:"dirty"`
	Submitting  bool        `json:"isSubmitting"`
	SubmitCount int         `json:"submitCount"`
}

// Submission is the outcome of a completed, valid submit. Shown is set once
// the success alert has been presented.
type Submission struct {
	Values      FormValues `json:"values"`
	Payload     string     `json:"payload"`
	CompletedAt time.Time  `json:"completed_at"`
	Shown       bool       `json:"shown"`
}

// FormSession is a form instance kept between events.
type FormSession struct {
	ID         string      `json:"id"`
	Mode       DisplayMode `json:"mode"`
	State      FormState   `json:"state"`
	LastResult *Submission `json:"last_result,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
