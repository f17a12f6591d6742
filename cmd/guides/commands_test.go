package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGuides(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand_Keyword(t *testing.T) {
	out, err := runGuides(t, "list", "--keyword", "react")
	require.NoError(t, err)

	assert.Contains(t, out, "spa-react")
	assert.Contains(t, out, "native-react-native")
	assert.NotContains(t, out, "spa-vue")
}

func TestListCommand_SamlNeedsCloudAndDevFeatures(t *testing.T) {
	out, err := runGuides(t, "list", "--category", "SAML")
	require.NoError(t, err)
	assert.Contains(t, out, "No guides match")

	out, err = runGuides(t, "list", "--category", "SAML", "--cloud", "--dev-features")
	require.NoError(t, err)
	assert.Contains(t, out, "saml")

	out, err = runGuides(t, "list", "--category", "SAML", "--cloud", "--dev-features", "--saml-limit", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No guides match")
}

func TestListCommand_UnknownCategory(t *testing.T) {
	_, err := runGuides(t, "list", "--category", "Desktop")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Desktop")
}

func TestStructuredCommand_PrintsEveryBucket(t *testing.T) {
	out, err := runGuides(t, "structured")
	require.NoError(t, err)

	for _, heading := range []string{"featured (4)", "Traditional (", "SPA (", "Native (", "MachineToMachine (", "Protected (0)", "SAML (0)", "ThirdParty (1)"} {
		assert.Contains(t, out, heading)
	}
	assert.Contains(t, out, "[third-party]")
}

func TestApiCommand(t *testing.T) {
	out, err := runGuides(t, "api")
	require.NoError(t, err)

	assert.Contains(t, out, "api-express")
	assert.Contains(t, out, "api-spring-boot")
	assert.NotContains(t, out, "spa-react")
}
