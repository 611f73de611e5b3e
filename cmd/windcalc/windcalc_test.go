package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var sheffieldArgs = []string{"wall", "--width", "20", "--height", "27", "--depth", "29",
	"--building-height", "27", "--altitude", "105", "--v-map", "22.1",
	"--distance-to-shore", "100", "--terrain", "town", "--distance-into-town", "2"}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "windcalc v1.0.0")
	assert.Contains(t, out, "SCI Publication P394")
}

func TestWallText(t *testing.T) {
	out, err := execute(t, sheffieldArgs...)
	require.NoError(t, err)
	assert.Contains(t, out, "ASSESSMENT: CAUTION")
	assert.Contains(t, out, "540.00 m²")
	assert.Contains(t, out, "CALCULATION STAGES:")
}

func TestWallJSON(t *testing.T) {
	out, err := execute(t, append(sheffieldArgs, "--json")...)
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 540.0, res["A_ref"])
	assert.Equal(t, "C", res["zone"])
	assert.InEpsilon(t, 460, res["force_kN"], 0.08)
}

func TestDistanceFlagAcceptsOpenEnded(t *testing.T) {
	want, err := execute(t, append(sheffieldArgs, "--json")...)
	require.NoError(t, err)

	args := append([]string{}, sheffieldArgs...)
	for i, a := range args {
		if a == "--distance-to-shore" {
			args[i+1] = "100+"
		}
	}
	got, err := execute(t, append(args, "--json")...)
	require.NoError(t, err)
	assert.JSONEq(t, want, got)
}

func TestWallRejectsBadInput(t *testing.T) {
	_, err := execute(t, "wall", "--height", "1", "--depth", "0.1", "--building-height", "5")
	assert.ErrorContains(t, err, "sign width")

	_, err = execute(t, "wall", "-W", "2", "-H", "1", "-d", "0.1", "--building-height", "5", "--terrain", "forest")
	assert.ErrorContains(t, err, "forest")
}

func TestWallFileWithOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sign.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sign_width: 20
sign_height: 27
sign_depth: 29
building_height: 27
site_altitude: 105
v_map: 30
distance_to_shore: 100
terrain_type: town
distance_into_town: 2
`), 0o644))

	out, err := execute(t, "wall", "--file", path, "--v-map", "22.1", "--json")
	require.NoError(t, err)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 22.1, res["v_map"])
	assert.Equal(t, 540.0, res["A_ref"])
}

func TestWallJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sign.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sign_width": 2, "sign_height": 1, "sign_depth": 0.1, "building_height": 5, "postcode": "EH1 1YZ"}`), 0o644))

	out, err := execute(t, "wall", "-f", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"v_map": 24`)
}

func TestWallReports(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "sign.pdf")
	xlsx := filepath.Join(dir, "sign.xlsx")

	_, err := execute(t, append(sheffieldArgs, "--pdf", pdf, "--xlsx", xlsx, "--project", "High Street")...)
	require.NoError(t, err)

	b, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
	b, err = os.ReadFile(xlsx)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("PK")))
}

func TestProjecting(t *testing.T) {
	out, err := execute(t, "projecting", "-W", "2", "-H", "1.5", "--projection", "0.6",
		"--mounting-height", "4.5", "--bracket-spacing", "1.2")
	require.NoError(t, err)
	assert.Contains(t, out, "422.8 Pa")
	assert.Contains(t, out, "Anchor combined")
	assert.Contains(t, out, "Overall:")

	_, err = execute(t, "projecting", "-W", "2", "-H", "1.5", "--mounting-height", "4.5", "--terrain-category", "V")
	assert.Error(t, err)
}

func TestPost(t *testing.T) {
	out, err := execute(t, "post", "-W", "3", "-H", "2", "-d", "0.3", "--base-height", "2.5",
		"--post-height", "4.5", "--altitude", "50", "--v-map", "22.5", "--distance-to-shore", "20",
		"--post-diameter", "150", "--post-thickness", "8", "--embedment", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "POST CHECK:")
	assert.Contains(t, out, "FOUNDATION:")
	assert.Contains(t, out, "Overall: ADEQUATE")

	out, err = execute(t, "post", "-W", "3", "-H", "2", "-d", "0.3", "--base-height", "2.5",
		"--post-height", "4.5", "--v-map", "22.5", "--post-diameter", "150", "--post-thickness", "8")
	require.NoError(t, err)
	assert.NotContains(t, out, "FOUNDATION:")

	out, err = execute(t, "post", "-W", "3", "-H", "2", "-d", "0.3", "--base-height", "2.5",
		"--post-height", "4.5", "--v-map", "22.5", "--post-diameter", "150", "--post-thickness", "8",
		"--embedment", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "INADEQUATE: Embedment depth too shallow")
	assert.Contains(t, out, "Overall: REQUIRES REVIEW")
}

func TestPanel(t *testing.T) {
	out, err := execute(t, "panel", "--material", "aluminium_3mm", "--spacing", "600", "--pressure", "1500")
	require.NoError(t, err)
	assert.Contains(t, out, "Overall: INADEQUATE")
	assert.Contains(t, out, "OR upgrade to thicker/stiffer panel material")

	_, err = execute(t, "panel", "--material", "plywood", "--spacing", "600", "--pressure", "1500")
	assert.ErrorContains(t, err, "plywood")
}

func TestPostcode(t *testing.T) {
	out, err := execute(t, "postcode", "EH1 1YZ")
	require.NoError(t, err)
	assert.Contains(t, out, "v_map = 24.0 m/s")

	_, err = execute(t, "postcode", "12345")
	assert.Error(t, err)
}

func TestHashKey(t *testing.T) {
	out, err := execute(t, "hash-key", "s3cret")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}

func TestToken(t *testing.T) {
	t.Setenv("WINDSIGN_TOKEN_KEY", "")
	_, err := execute(t, "token")
	assert.Error(t, err)

	t.Setenv("WINDSIGN_TOKEN_KEY", "cli-key")
	out, err := execute(t, "token", "--subject", "ops", "--ttl", "1h")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(strings.TrimSpace(out), "."))
}
