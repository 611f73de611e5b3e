package autodesign

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Windsign/internal/calc/post"
	"Windsign/internal/calc/pressure"
)

func sign() post.Input {
	embedment := 1.5
	return post.Input{
		SignWidth:       3.0,
		SignHeight:      2.0,
		SignDepth:       0.3,
		SignBaseHeight:  2.5,
		PostHeight:      4.5,
		SiteAltitude:    50,
		VMap:            22.5,
		DistanceToShore: pressure.KM(20),
		TerrainType:     "country",
		EmbedmentDepth:  &embedment,
	}
}

func TestPostCircularOnly(t *testing.T) {
	res, err := Post(PostAutoInput{Input: sign(), SectionTypes: []string{post.Circular}})
	require.NoError(t, err)

	// 139.7x5.0 is just over the bending limit
	assert.Equal(t, Section{post.Circular, 168.3, 6.3}, res.Section)
	assert.Equal(t, "CHS 168.3x6.3", res.Designation)
	assert.Equal(t, 6, res.Tried)
	require.NotNil(t, res.Result.PostCheck)
	assert.InDelta(t, 0.58, res.Result.PostCheck.EtaBending, 0.02)
	assert.InDelta(t, 25.2, res.MassPerM, 0.1)
}

func TestPostLightestOfAll(t *testing.T) {
	res, err := Post(PostAutoInput{Input: sign()})
	require.NoError(t, err)
	assert.Equal(t, "SHS 120x120x6", res.Designation)
	assert.Equal(t, "PASS", res.Result.PostCheck.BendingStatus)
	assert.Equal(t, "PASS", res.Result.PostCheck.ShearStatus)
}

func TestPostAluminiumIsLighterPerSection(t *testing.T) {
	in := sign()
	in.PostMaterial = post.Aluminium
	in.PostFy = 160
	res, err := Post(PostAutoInput{Input: in, SectionTypes: []string{post.Circular}})
	require.NoError(t, err)
	p, err := post.SectionProperties(res.Section.Type, false, res.Section.Size, res.Section.Thickness)
	require.NoError(t, err)
	assert.InDelta(t, p.Area*2700e-6, res.MassPerM, 1e-9)
}

func TestPostErrors(t *testing.T) {
	in := sign()
	in.PostMaterial = post.Timber
	_, err := Post(PostAutoInput{Input: in})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Post(PostAutoInput{Input: sign(), SectionTypes: []string{"hexagonal"}})
	assert.ErrorIs(t, err, post.ErrUnknownSection)

	huge := sign()
	huge.SignWidth, huge.SignHeight, huge.SignBaseHeight, huge.PostHeight = 20, 10, 10, 20
	_, err = Post(PostAutoInput{Input: huge})
	assert.ErrorIs(t, err, ErrNoSection)
}

func TestCandidatesOrderedByArea(t *testing.T) {
	cands, err := candidates(nil)
	require.NoError(t, err)
	assert.Len(t, cands, len(Catalogue))
	for i := 1; i < len(cands); i++ {
		assert.LessOrEqual(t, cands[i-1].area, cands[i].area)
	}
}

func TestHandler(t *testing.T) {
	body := `{"sign_width":3,"sign_height":2,"sign_depth":0.3,"sign_base_height":2.5,"post_height":4.5,
		"site_altitude":50,"v_map":22.5,"distance_to_shore":20,"terrain_type":"country","section_types":["circular"]}`
	rec := httptest.NewRecorder()
	(&Handler{}).Post(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"designation":"CHS 168.3x6.3"`)

	rec = httptest.NewRecorder()
	(&Handler{}).Post(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
