//go:build !cgo

package main

import (
	"context"
	"fmt"

	"github.com/appengine-ltd/toybox/internal/config"
	"github.com/appengine-ltd/toybox/internal/launcher"
)

func launchGraphical(_ context.Context, app launcher.App, _ config.Config) error {
	return fmt.Errorf("%s needs a cgo build with raylib; this binary only runs calc", app.ID)
}
