//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs a full build and test cycle
var Default = All

// Build compiles the omniread binary
func Build() error {
	return sh.RunV("go", "build", "-o", "omniread", "./cmd/omniread")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs omniread into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/omniread")
}

// All vets, tests and builds
func All() {
	mg.SerialDeps(Vet, Test, Build)
}
