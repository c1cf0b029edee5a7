package cli

import (
	"testing"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []string
		want    CLIArgs
		wantErr bool
	}{
		{
			name: "target only uses defaults",
			args: []string{"-target", "https://example.com"},
			want: CLIArgs{Target: "https://example.com", Format: "text"},
		},
		{
			name: "all flags",
			args: []string{
				"-target", "example.com",
				"-pages", "10",
				"-format", "csv",
				"-db", "audits.db",
				"-engine", "/opt/axe.min.js",
				"-backend", "chrome",
			},
			want: CLIArgs{
				Target:     "example.com",
				MaxPages:   10,
				Format:     "csv",
				DBPath:     "audits.db",
				EnginePath: "/opt/axe.min.js",
				Backend:    "chrome",
			},
		},
		{
			name:    "missing target",
			args:    []string{"-pages", "5"},
			wantErr: true,
		},
		{
			name:    "blank target",
			args:    []string{"-target", "   "},
			wantErr: true,
		},
		{
			name:    "unknown format",
			args:    []string{"-target", "example.com", "-format", "pdf"},
			wantErr: true,
		},
		{
			name:    "negative pages",
			args:    []string{"-target", "example.com", "-pages", "-1"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-target", "example.com", "-verbose"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseArgs(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseArgs(%v) succeeded, want error", tc.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArgs(%v) returned error: %v", tc.args, err)
			}
			if got.Target != tc.want.Target ||
				got.MaxPages != tc.want.MaxPages ||
				got.Format != tc.want.Format ||
				got.DBPath != tc.want.DBPath ||
				got.EnginePath != tc.want.EnginePath ||
				got.Backend != tc.want.Backend {
				t.Errorf("ParseArgs(%v) = %+v, want %+v", tc.args, got, tc.want)
			}
		})
	}
}
