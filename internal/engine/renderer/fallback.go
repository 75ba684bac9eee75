package renderer

// The fallback program draws positions already displaced on the CPU and
// shades them like the easing fragment shader.
const fallbackVertex = `#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec3 normal;
layout (location = 5) in float colorWeight;

uniform mat4 projectionMatrix;
uniform mat4 modelViewMatrix;
uniform mat3 normalMatrix;
uniform float maxY;

out vec3 vNormal;
out float vWeight;
out float vYRelative;

void main() {
	vNormal = normalize(normalMatrix * normal);
	vWeight = colorWeight;
	vYRelative = (position.y * maxY + 1.0) * 0.5;
	gl_Position = projectionMatrix * modelViewMatrix * vec4(position, 1.0);
}
`

const fallbackFragment = `#version 410 core

in vec3 vNormal;
in float vWeight;
in float vYRelative;

out vec4 fragColor;

void main() {
	vec3 light = normalize(vec3(0.5, 0.8, 0.6));
	float diffuse = max(dot(normalize(vNormal), light), 0.0) * 0.7 + 0.3;
	vec3 base = mix(vec3(0.16, 0.42, 0.86), vec3(0.95, 0.36, 0.24), clamp(abs(vWeight), 0.0, 1.0));
	fragColor = vec4(base * diffuse * (0.6 + 0.4 * vYRelative), 1.0);
}
`

// The particle program draws the background field as unlit points.
const particleVertex = `#version 410 core

layout (location = 0) in vec3 position;

uniform mat4 projectionMatrix;
uniform mat4 modelViewMatrix;
uniform float pointSize;

void main() {
	gl_PointSize = pointSize;
	gl_Position = projectionMatrix * modelViewMatrix * vec4(position, 1.0);
}
`

const particleFragment = `#version 410 core

uniform vec3 color;

out vec4 fragColor;

void main() {
	fragColor = vec4(color, 1.0);
}
`
