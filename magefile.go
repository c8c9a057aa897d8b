//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the resdiff binary
func Build() error {
	ldflags, err := buildLDFlags()
	if err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/resdiff", "./cmd/resdiff")
}

// buildLDFlags stamps version information into internal/version.
func buildLDFlags() (string, error) {
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	date, err := sh.Output("date", "-u", "+%Y-%m-%dT%H:%M:%SZ")
	if err != nil {
		return "", err
	}
	pkg := "github.com/jbmorgado/resdiff/internal/version"
	return fmt.Sprintf("-X %s.CommitHash=%s -X %s.BuildDate=%s", pkg, commit, pkg, date), nil
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// QA runs format, vet, and tests
func QA() error {
	mg.Deps(Fmt, Vet)
	return Test()
}

// Fmt checks gofmt compliance
func Fmt() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need formatting:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
