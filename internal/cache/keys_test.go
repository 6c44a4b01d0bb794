package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "form",
			objectType:  "session",
			identifier:  "123",
			paramsKey:   nil,
			expectedKey: "quizform:form:session:123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "form",
			objectType:  "session",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "quizform:form:session:123",
		},
		{
			name:        "with one paramsKey",
			serviceName: "form",
			objectType:  "result",
			identifier:  "abc",
			paramsKey:   []string{"param1"},
			expectedKey: "quizform:form:result:abc:param1",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "submission",
			objectType:  "payload",
			identifier:  "xyz",
			paramsKey:   []string{"param1", "param2", "param3"},
			expectedKey: "quizform:submission:payload:xyz:param1_param2_param3",
		},
		{
			name:        "with paramsKey containing special characters",
			serviceName: "service",
			objectType:  "type",
			identifier:  "id",
			paramsKey:   []string{"param-1", "param_2"},
			expectedKey: "quizform:service:type:id:param-1_param_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestFormSessionKey(t *testing.T) {
	const id = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"
	if got, want := FormSessionKey(id), "quizform:form:session:"+id; got != want {
		t.Errorf("FormSessionKey() = %v, want %v", got, want)
	}
}
