//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the hello demo.
func (Run) Hello() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/hello"), withStream())
	return err
}

// Runs the projectile ticker with the built-in scenario and debug logging.
func (Run) Ticker() error {
	mg.Deps(Build.All)
	_, err := executeCmd("go", withArgs("run", "./cmd/ticker", "-v"), withStream())
	return err
}

// Runs the projectile ticker with the example scenario in testdata.
func (Run) Scenario() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/ticker", "-config", "testdata/scenario.toml"), withStream())
	return err
}
