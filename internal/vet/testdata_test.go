package vet_test

import (
	"path/filepath"

	"github.com/bazelbuild/rules_go/go/tools/bazel"
	"golang.org/x/tools/go/analysis/analysistest"
)

// testdataDir returns the GOPATH-style testdata tree. Under Bazel it comes
// from runfiles, otherwise from the package directory.
func testdataDir() string {
	if p, err := bazel.Runfile("internal/vet/testdata/src/a/a.go"); err == nil {
		return filepath.Dir(filepath.Dir(filepath.Dir(p)))
	}
	return analysistest.TestData()
}
