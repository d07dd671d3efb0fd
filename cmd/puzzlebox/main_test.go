package main

import "testing"

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil, envMap(nil))
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.AppName != "Puzzles" {
		t.Errorf("AppName = %q, want %q", opts.AppName, "Puzzles")
	}
	if opts.Backend != "" || opts.DataDir != "" || opts.BackupKeep != 0 {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.Version != Version {
		t.Errorf("Version = %q, want %q", opts.Version, Version)
	}
}

func TestParseOptionsFlags(t *testing.T) {
	args := []string{"-backend", "net", "-strings", "fr.yaml", "-data-dir", "/tmp/p"}
	opts, err := parseOptions(args, envMap(map[string]string{envDataDir: "/env"}))
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.Backend != "net" {
		t.Errorf("Backend = %q, want %q", opts.Backend, "net")
	}
	if opts.StringsOverride != "fr.yaml" {
		t.Errorf("StringsOverride = %q, want %q", opts.StringsOverride, "fr.yaml")
	}
	if opts.DataDir != "/tmp/p" {
		t.Errorf("DataDir = %q, flag should win over environment", opts.DataDir)
	}
}

func TestParseOptionsEnvironment(t *testing.T) {
	env := envMap(map[string]string{envDataDir: "/env", envBackupKeep: "3"})
	opts, err := parseOptions(nil, env)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.DataDir != "/env" {
		t.Errorf("DataDir = %q, want %q", opts.DataDir, "/env")
	}
	if opts.BackupKeep != 3 {
		t.Errorf("BackupKeep = %d, want 3", opts.BackupKeep)
	}
}

func TestParseOptionsInvalidBackupKeep(t *testing.T) {
	for _, v := range []string{"zero", "0", "-2"} {
		if _, err := parseOptions(nil, envMap(map[string]string{envBackupKeep: v})); err == nil {
			t.Errorf("expected error for %s=%q", envBackupKeep, v)
		}
	}
}

func TestParseOptionsUnknownFlag(t *testing.T) {
	if _, err := parseOptions([]string{"-nope"}, envMap(nil)); err == nil {
		t.Error("expected error for unknown flag")
	}
}
