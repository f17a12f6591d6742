package guide

import "guide-catalog-be/internal/entity"

// BuiltinCorpus is the guide list shipped with the service.
// Order here is the display order everywhere.
var BuiltinCorpus = []entity.Guide{
	{
		Id:          "web-next-app-router",
		Name:        "Next.js (App Router)",
		Description: "Next.js App Router is a new paradigm for building applications using React's latest features.",
		Target:      entity.TargetTraditional,
		IsFeatured:  true,
	},
	{
		Id:          "spa-react",
		Name:        "React",
		Description: "React is a JavaScript library for building user interfaces.",
		Target:      entity.TargetSPA,
		IsFeatured:  true,
	},
	{
		Id:          "native-ios-swift",
		Name:        "iOS (Swift)",
		Description: "Build native iOS apps with Swift.",
		Target:      entity.TargetNative,
		IsFeatured:  true,
	},
	{
		Id:          "m2m-general",
		Name:        "Machine-to-machine",
		Description: "Enables direct communication between machines.",
		Target:      entity.TargetMachineToMachine,
		IsFeatured:  true,
	},
	{
		Id:          "web-express",
		Name:        "Express",
		Description: "Express is a minimal and flexible Node.js web application framework.",
		Target:      entity.TargetTraditional,
	},
	{
		Id:          "web-go",
		Name:        "Go",
		Description: "Integrate sign-in into a Go web application.",
		Target:      entity.TargetTraditional,
	},
	{
		Id:          "web-php",
		Name:        "PHP",
		Description: "Integrate sign-in into a PHP web application.",
		Target:      entity.TargetTraditional,
	},
	{
		Id:          "spa-vue",
		Name:        "Vue",
		Description: "Vue is a progressive JavaScript framework for building user interfaces.",
		Target:      entity.TargetSPA,
	},
	{
		Id:          "spa-angular",
		Name:        "Angular",
		Description: "Angular is a platform for building mobile and desktop web applications.",
		Target:      entity.TargetSPA,
	},
	{
		Id:          "native-android",
		Name:        "Android (Kotlin / Java)",
		Description: "Build native Android apps with Kotlin or Java.",
		Target:      entity.TargetNative,
	},
	{
		Id:          "native-react-native",
		Name:        "React Native",
		Description: "Build cross-platform native apps with React.",
		Target:      entity.TargetNative,
	},
	{
		Id:          "native-flutter",
		Name:        "Flutter",
		Description: "Build cross-platform apps with Flutter and Dart.",
		Target:      entity.TargetNative,
	},
	{
		Id:          "protected-app",
		Name:        "Protected app",
		Description: "Add authentication to an existing app without code changes.",
		Target:      entity.TargetProtected,
		IsCloud:     true,
	},
	{
		Id:           "saml",
		Name:         "SAML",
		Description:  "Connect a SAML service provider to the identity provider.",
		Target:       entity.TargetSAML,
		IsCloud:      true,
		IsDevFeature: true,
	},
	{
		Id:           "third-party-oidc",
		Name:         "OIDC third-party app",
		Description:  "Let a third-party OIDC application sign users in through your tenant.",
		Target:       entity.TargetTraditional,
		IsThirdParty: true,
	},
	{
		Id:           "third-party-spa",
		Name:         "Third-party SPA",
		Description:  "Authorize a third-party single-page application.",
		Target:       entity.TargetSPA,
		IsThirdParty: true,
		IsDevFeature: true,
	},
	{
		Id:          "api-express",
		Name:        "Express",
		Description: "Protect an Express API with access token validation.",
		Target:      entity.TargetAPI,
	},
	{
		Id:          "api-python",
		Name:        "Python",
		Description: "Protect a Python API with access token validation.",
		Target:      entity.TargetAPI,
	},
	{
		Id:          "api-spring-boot",
		Name:        "Spring Boot",
		Description: "Protect a Spring Boot API with access token validation.",
		Target:      entity.TargetAPI,
		IsCloud:     true,
	},
}
