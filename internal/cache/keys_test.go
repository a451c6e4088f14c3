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
			serviceName: "evaluation",
			objectType:  "verdict",
			identifier:  "abc123",
			expectedKey: "aiassess:evaluation:verdict:abc123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "evaluation",
			objectType:  "verdict",
			identifier:  "abc123",
			paramsKey:   []string{},
			expectedKey: "aiassess:evaluation:verdict:abc123",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "report",
			objectType:  "registration",
			identifier:  "42",
			paramsKey:   []string{"v2", "full"},
			expectedKey: "aiassess:report:registration:42:v2_full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...); got != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %q, want %q", got, tt.expectedKey)
			}
		})
	}
}

func TestVerdictKey(t *testing.T) {
	if got, want := VerdictKey("d1g3st"), "aiassess:evaluation:verdict:d1g3st"; got != want {
		t.Errorf("VerdictKey() = %q, want %q", got, want)
	}
}
