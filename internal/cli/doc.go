// SPDX-License-Identifier: MIT

// Package cli parses the xwgrid command line into Options. It performs no
// I/O beyond writing usage text.
package cli
