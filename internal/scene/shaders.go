package scene

// Shader sources for the phong pipeline every prop draws through.
// Vertex attributes follow the mesh package layout; light and material
// uniform names are shared with the lighting and material packages.

const vertexShaderSource = `
	#version 410 core

	layout (location = 0) in vec3 inPosition;
	layout (location = 1) in vec3 inNormal;
	layout (location = 2) in vec2 inTexCoord;

	uniform mat4 model;
	uniform mat4 view;
	uniform mat4 projection;

	out vec3 fragmentPosition;
	out vec3 fragmentNormal;
	out vec2 fragmentTexCoord;

	void main() {
		fragmentPosition = vec3(model * vec4(inPosition, 1.0));
		fragmentNormal = mat3(transpose(inverse(model))) * inNormal;
		fragmentTexCoord = inTexCoord;
		gl_Position = projection * view * vec4(fragmentPosition, 1.0);
	}
`

const fragmentShaderSource = `
	#version 410 core

	#define TOTAL_LIGHTS 4

	struct Material {
		vec3 ambientColor;
		float ambientStrength;
		vec3 diffuseColor;
		vec3 specularColor;
		float shininess;
	};

	struct LightSource {
		vec3 position;
		vec3 ambientColor;
		vec3 diffuseColor;
		vec3 specularColor;
		float focalStrength;
		float specularIntensity;
	};

	in vec3 fragmentPosition;
	in vec3 fragmentNormal;
	in vec2 fragmentTexCoord;

	uniform bool bUseTexture;
	uniform bool bUseLighting;
	uniform vec4 objectColor;
	uniform sampler2D objectTexture;
	uniform vec3 viewPosition;
	uniform vec2 UVscale;
	uniform LightSource lightSources[TOTAL_LIGHTS];
	uniform Material material;

	out vec4 outFragmentColor;

	vec3 CalcLight(LightSource light, vec3 normal, vec3 viewDir, vec3 baseColor) {
		vec3 lightDir = normalize(light.position - fragmentPosition);
		float diff = max(dot(normal, lightDir), 0.0);

		vec3 reflectDir = reflect(-lightDir, normal);
		float specExponent = max(material.shininess * light.focalStrength, 1.0);
		float spec = pow(max(dot(viewDir, reflectDir), 0.0), specExponent);

		vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor;
		vec3 diffuse = light.diffuseColor * diff * material.diffuseColor;
		vec3 specular = light.specularColor * spec * light.specularIntensity * material.specularColor;

		return (ambient + diffuse) * baseColor + specular;
	}

	void main() {
		vec4 baseColor = bUseTexture
			? texture(objectTexture, fragmentTexCoord * UVscale)
			: objectColor;

		if (!bUseLighting) {
			outFragmentColor = baseColor;
			return;
		}

		vec3 normal = normalize(fragmentNormal);
		vec3 viewDir = normalize(viewPosition - fragmentPosition);

		vec3 color = vec3(0.0);
		for (int i = 0; i < TOTAL_LIGHTS; i++) {
			color += CalcLight(lightSources[i], normal, viewDir, baseColor.rgb);
		}

		outFragmentColor = vec4(color, baseColor.a);
	}
`
