// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen || !((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package main

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/glw/config"
)

func run(cfg *config.Config) error {
	return errors.New("glwview: built without window support")
}
