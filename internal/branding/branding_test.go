package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "runssh"},
		{"HomeDir", HomeDir(), ".runssh"},
		{"EnvPrefix", EnvPrefix(), "RUNSSH"},
		{"EnvVar", EnvVar("store_file"), "RUNSSH_STORE_FILE"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if DisplayName() == "" || Description() == "" {
		t.Error("display name and description must not be empty")
	}
}
