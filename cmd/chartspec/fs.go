// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import "github.com/tlg-eval/chartspec/internal/testable"

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS
