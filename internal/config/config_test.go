package config

import (
	"errors"
	"testing"

	"github.com/bintc/bintc/internal/tinycode"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Parameters
		wantErr error
	}{
		{
			name: "architecture only",
			args: []string{"-architecture", "arm"},
			want: Parameters{Architecture: "arm"},
		},
		{
			name: "short flags",
			args: []string{"-a", "x86_64", "-o", "16", "-g", "asm"},
			want: Parameters{Architecture: "x86_64", Offset: 16, DebugMode: tinycode.DebugAsm},
		},
		{
			name: "hex offset",
			args: []string{"-a", "arm", "-offset", "0x10"},
			want: Parameters{Architecture: "arm", Offset: 16},
		},
		{
			name: "input path",
			args: []string{"-a", "arm", "program.bin"},
			want: Parameters{Architecture: "arm", InputPath: "program.bin"},
		},
		{
			name: "input and output paths",
			args: []string{"-a", "arm", "program.bin", "out.ptc"},
			want: Parameters{Architecture: "arm", InputPath: "program.bin", OutputPath: "out.ptc"},
		},
		{
			name: "paths after terminator",
			args: []string{"-a", "arm", "--", "program.bin", "out.ptc"},
			want: Parameters{Architecture: "arm", InputPath: "program.bin", OutputPath: "out.ptc"},
		},
		{
			name: "debug ptc",
			args: []string{"-a", "arm", "-debug", "ptc"},
			want: Parameters{Architecture: "arm", DebugMode: tinycode.DebugPTC},
		},
		{
			name:    "missing architecture",
			args:    []string{"program.bin"},
			wantErr: ErrMissingArchitecture,
		},
		{
			name:    "no arguments at all",
			args:    nil,
			wantErr: ErrMissingArchitecture,
		},
		{
			name:    "offset not a number",
			args:    []string{"-a", "arm", "-o", "sixteen"},
			wantErr: ErrInvalidOffset,
		},
		{
			name:    "negative offset",
			args:    []string{"-a", "arm", "-o", "-5"},
			wantErr: ErrInvalidOffset,
		},
		{
			name:    "unknown debug mode",
			args:    []string{"-a", "arm", "-g", "dwarf"},
			wantErr: ErrInvalidDebugMode,
		},
		{
			name:    "three positional arguments",
			args:    []string{"-a", "arm", "in.bin", "out.ptc", "extra"},
			wantErr: ErrTooManyArguments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	if _, err := Parse([]string{"-a", "arm", "-unknown"}); err == nil {
		t.Errorf("Parse() accepted an unknown flag")
	}
}
