// Package testutil holds fixtures shared by package tests: files on an
// afero filesystem, installed node packages and an environment isolated
// from the user's configuration.
package testutil
