package main

const vsPanoramaSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	layout (location = 1) in vec2 aTextureCoord;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	out highp vec2 vTextureCoord;

	void main(void) {
		gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
		vTextureCoord = aTextureCoord;
	}
`

const fsPanoramaSource = `#version 300 es
	in highp vec2 vTextureCoord;
	uniform sampler2D uSampler;
	out lowp vec4 outColor;

	void main(void) {
		outColor = texture(uSampler, vTextureCoord);
	}
`
