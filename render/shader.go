package render

const vsPointsSource = `#version 300 es
	layout (location = 0) in vec3 aVertexPosition;
	layout (location = 1) in vec3 aVertexColor;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;
	uniform float uSize;
	uniform float uScale;
	vec4 viewPosition;
	out lowp vec3 vColor;

	void main(void) {
		viewPosition = uModelViewMatrix * vec4(aVertexPosition, 1.0);
		gl_Position = uProjectionMatrix * viewPosition;
		gl_PointSize = uSize * uScale / -viewPosition.z;
		vColor = aVertexColor;
	}
`

const fsPointsSource = `#version 300 es
	in lowp vec3 vColor;
	uniform lowp float uOpacity;
	uniform int uRound;
	out lowp vec4 outColor;

	void main(void) {
		if (uRound != 0 && length(gl_PointCoord - vec2(0.5, 0.5)) > 0.5) {
			discard;
		}
		outColor = vec4(vColor, uOpacity);
	}
`

const vsLinesSource = `#version 300 es
	layout (location = 0) in vec3 aVertexPosition;
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;

	void main(void) {
		gl_Position = uProjectionMatrix * uModelViewMatrix * vec4(aVertexPosition, 1.0);
	}
`

const fsLinesSource = `#version 300 es
	uniform lowp vec3 uColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vec4(uColor, 1.0);
	}
`
