// Package prompt collects field values interactively before a form is
// rendered. The survey-backed Driver can be swapped for tests.
package prompt
