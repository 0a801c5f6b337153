//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "bin/phonikud"

// Default target to run when none is specified
var Default = Build

// Build compiles the phonikud binary into bin/
func Build() error {
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", binary, "./cmd/phonikud")
}

// Install installs phonikud into $GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/phonikud")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs all tests with the race detector
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
