package display

const vertex = `
#version 410

in  vec3 vertPos;
in  vec2 vertTexCoord;
out vec2 fragTexCoord;

void main() {
    fragTexCoord = vertTexCoord;
    gl_Position  = vec4(vertPos, 1);
}
`

const fragment = `
#version 410

uniform sampler2D display;
uniform vec4 offColor;
uniform vec4 onColor;

in  vec2 fragTexCoord;
out vec4 outputColor;

void main() {
    // Framebuffer cells hold 0 or 1 in the red channel. Anything nonzero
    // is a lit pixel.
    float px = texture(display, fragTexCoord).r;
    outputColor = mix(offColor, onColor, step(0.5 / 255.0, px));
}
`
