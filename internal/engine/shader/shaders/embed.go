// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BasicVertexShader transforms lit, textured scene geometry.
//
//go:embed basic.vert
var BasicVertexShader string

// BasicFragmentShader shades scene geometry with one directional light.
//
//go:embed basic.frag
var BasicFragmentShader string

// SkyboxVertexShader projects the sky cube around the viewer.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader samples the sky cubemap.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
