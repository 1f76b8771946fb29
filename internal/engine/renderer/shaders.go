package renderer

const terrainVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

layout (std140) uniform Transforms {
    mat4 mvp;
    mat4 proj;
    mat4 view;
    mat4 model;
    mat4 sun_vp;
};

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
    vec4 world = model * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(model) * aNormal;
    gl_Position = mvp * vec4(aPosition, 1.0);
}
`

const terrainFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 uSunDir;
uniform vec3 uAmbient;
uniform vec3 uAlbedo;
uniform vec2 uCursor;
uniform float uBrushRadius;
uniform vec3 uRingColor;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, normalize(uSunDir)), 0.0);
    vec3 color = uAlbedo * (uAmbient + diffuse);

    // an infinite cursor makes d infinite and hides the ring
    float d = distance(vWorldPos.xz, uCursor);
    float width = max(0.3, uBrushRadius * 0.04);
    float ring = 1.0 - smoothstep(0.0, width, abs(d - uBrushRadius));
    float inside = (1.0 - smoothstep(0.0, uBrushRadius, d)) * 0.15;
    color = mix(color, uRingColor, clamp(ring + inside, 0.0, 1.0));

    FragColor = vec4(color, 1.0);
}
`

const overlayVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
    gl_Position = uProjection * vec4(aPos, 1.0);
    vColor = aColor;
}
`

const overlayFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
`
