// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glversion parses GL version strings and answers extension-set
// queries for surface implementations.
package glversion

import "fmt"

// Version is a parsed GL version.
type Version struct {
	Major, Minor int

	// ES reports an OpenGL ES (or WebGL) context rather than desktop GL.
	ES bool
}

// Parse parses the string returned by glGetString(GL_VERSION).
// Recognized shapes:
//
//	"OpenGL ES 3.2 Mesa 23.1"  -> {3, 2, ES}
//	"WebGL 2.0"                -> {3, 0, ES} (WebGL v maps to ES v+1)
//	"4.1 Metal - 88"           -> {4, 1, desktop}
func Parse(glVer string) (Version, error) {
	var v Version
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &v.Major, &v.Minor); err == nil {
		v.ES = true
		return v, nil
	}
	if _, err := fmt.Sscanf(glVer, "WebGL %d.%d", &v.Major, &v.Minor); err == nil {
		// WebGL major version v corresponds to OpenGL ES version v + 1.
		v.Major++
		v.ES = true
		return v, nil
	}
	if _, err := fmt.Sscanf(glVer, "%d.%d", &v.Major, &v.Minor); err == nil {
		return v, nil
	}
	return v, fmt.Errorf("glversion: failed to parse GL version %q", glVer)
}

// AtLeast reports whether v is at least major.minor.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// Modern reports whether v belongs to the modern context generation:
// desktop GL 3.2 core and later, or ES 3.0 and later. Modern contexts
// guarantee 32-bit element indices without an extension.
func (v Version) Modern() bool {
	if v.ES {
		return v.AtLeast(3, 0)
	}
	return v.AtLeast(3, 2)
}

// String returns the version in "major.minor" form, prefixed with "ES "
// for ES contexts.
func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("ES %d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// HasExtension reports whether ext is present in exts.
func HasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
