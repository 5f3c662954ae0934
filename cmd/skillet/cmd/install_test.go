package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setTestSkillsDir points the global --skills-dir flag at a temp dir and
// restores it when the test ends.
func setTestSkillsDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "skills")
	old := skillsDir
	skillsDir = dir
	t.Cleanup(func() { skillsDir = old })
	return dir
}

func resetInstallFlags(t *testing.T) {
	t.Helper()
	oldName, oldForce, oldDryRun := installName, installForce, installDryRun
	installName, installForce, installDryRun = "", false, false
	t.Cleanup(func() {
		installName, installForce, installDryRun = oldName, oldForce, oldDryRun
	})
}

func writeTestSkill(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("# "+name), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return dir
}

func TestInstallCommand_LocalPath(t *testing.T) {
	dest := setTestSkillsDir(t)
	resetInstallFlags(t)
	skillDir := writeTestSkill(t, "test-skill")

	var buf bytes.Buffer
	installCmd.SetOut(&buf)
	installCmd.SetErr(&buf)

	if err := runInstall(installCmd, []string{skillDir}); err != nil {
		t.Fatalf("runInstall() error = %v", err)
	}

	installedPath := filepath.Join(dest, "test-skill")
	if _, err := os.Stat(filepath.Join(installedPath, "SKILL.md")); os.IsNotExist(err) {
		t.Errorf("skill should be installed at %s", installedPath)
	}
	if !strings.Contains(buf.String(), "Installed skill") {
		t.Errorf("output missing confirmation: %q", buf.String())
	}
}

func TestInstallCommand_DryRun(t *testing.T) {
	dest := setTestSkillsDir(t)
	resetInstallFlags(t)
	installDryRun = true
	skillDir := writeTestSkill(t, "preview-skill")

	var buf bytes.Buffer
	installCmd.SetOut(&buf)
	installCmd.SetErr(&buf)

	if err := runInstall(installCmd, []string{skillDir}); err != nil {
		t.Fatalf("runInstall() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "preview-skill")); !os.IsNotExist(err) {
		t.Error("dry run must not install anything")
	}
	out := buf.String()
	if !strings.Contains(out, "Would install") {
		t.Errorf("output = %q, want dry-run preview", out)
	}
	if !strings.Contains(out, "SKILL.md") {
		t.Errorf("output = %q, want file listing", out)
	}
}

func TestInstallCommand_CustomName(t *testing.T) {
	dest := setTestSkillsDir(t)
	resetInstallFlags(t)
	installName = "aliased"
	skillDir := writeTestSkill(t, "original")

	installCmd.SetOut(new(bytes.Buffer))
	if err := runInstall(installCmd, []string{skillDir}); err != nil {
		t.Fatalf("runInstall() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "aliased", "SKILL.md")); os.IsNotExist(err) {
		t.Error("skill should be installed under the --name alias")
	}
}

func TestInstallCommand_InvalidShorthand(t *testing.T) {
	setTestSkillsDir(t)
	resetInstallFlags(t)

	installCmd.SetOut(new(bytes.Buffer))
	err := runInstall(installCmd, []string{"garbage"})
	if err == nil {
		t.Fatal("runInstall() should fail for an unresolvable source")
	}
	if !strings.Contains(err.Error(), "shorthand") {
		t.Errorf("error = %v, want shorthand failure", err)
	}
}

func TestInstallCommand_RejectsInvalidConfig(t *testing.T) {
	setTestSkillsDir(t)
	resetInstallFlags(t)
	skillDir := writeTestSkill(t, "unreachable")

	project := t.TempDir()
	if err := os.MkdirAll(filepath.Join(project, ".skillet"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := "[logging]\nlevel = \"loud\"\n"
	if err := os.WriteFile(filepath.Join(project, ".skillet", "config.toml"), []byte(cfg), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(project); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})

	installCmd.SetOut(new(bytes.Buffer))
	err = runInstall(installCmd, []string{skillDir})
	if err == nil {
		t.Fatal("runInstall() should fail when the loaded config is invalid")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("error = %v, want config validation failure", err)
	}
}

func TestInstallCommand_ExistingNeedsForce(t *testing.T) {
	setTestSkillsDir(t)
	resetInstallFlags(t)
	skillDir := writeTestSkill(t, "dup")

	installCmd.SetOut(new(bytes.Buffer))
	if err := runInstall(installCmd, []string{skillDir}); err != nil {
		t.Fatalf("first install error = %v", err)
	}

	err := runInstall(installCmd, []string{skillDir})
	if err == nil {
		t.Fatal("second install should fail without --force")
	}

	installForce = true
	if err := runInstall(installCmd, []string{skillDir}); err != nil {
		t.Fatalf("forced install error = %v", err)
	}
}
