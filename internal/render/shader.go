package render

// Lighting shader shared by every entity mesh. Same vertex attributes as
// raylib's generated meshes (vertexPosition, vertexTexCoord, vertexNormal).
// Light type and count are float uniforms because raylib-go uploads float
// slices; the fragment shader compares against 0.5/1.5 to branch.

// maxShaderLights is the size of the uniform light array. The scene may
// hold more; the renderer uploads the first maxShaderLights.
const maxShaderLights = 16

const litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform vec2 uvTiling;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord * uvTiling;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`

const litFS = `#version 330
#define MAX_LIGHTS 16
struct Light {
  float type; // 0 directional, 1 point, 2 spot
  vec3 direction;
  vec3 position;
  vec3 color;
  float intensity;
  float range;
  float spotFalloff;
};
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform Light lights[MAX_LIGHTS];
uniform float lightCount;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec4 ambient;
uniform float specularPower;
uniform float specularStrength;
uniform sampler2D albedoMap;
uniform float useAlbedoMap;
out vec4 finalColor;

void main() {
  vec4 tint = colDiffuse;
  if (useAlbedoMap > 0.5) {
    tint *= texture(albedoMap, fragTexCoord);
  }
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 acc = vec3(0.0);

  int count = int(lightCount + 0.5);
  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (i >= count) break;
    Light l = lights[i];

    vec3 L;
    float atten = 1.0;
    if (l.type < 0.5) {
      L = normalize(-l.direction);
    } else {
      vec3 toL = l.position - fragPosition;
      float dist = length(toL);
      L = toL / max(dist, 0.0001);
      atten = clamp(1.0 - dist / max(l.range, 0.0001), 0.0, 1.0);
      atten *= atten;
      if (l.type > 1.5) {
        float cone = max(dot(-L, normalize(l.direction)), 0.0);
        atten *= pow(cone, l.spotFalloff);
      }
    }

    float NdotL = max(dot(N, L), 0.0);
    vec3 diffuse = tint.rgb * NdotL * l.color * l.intensity;
    vec3 H = normalize(L + V);
    float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
    vec3 specular = l.color * spec * (NdotL > 0.0 ? 1.0 : 0.0);
    acc += (diffuse + specular) * atten;
  }

  finalColor = vec4(ambient.rgb * tint.rgb + acc, tint.a);
}
`
