package evergreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionBuildVariantsMap(t *testing.T) {
	t.Parallel()

	version := Version{BuildVariantsStatus: []BuildVariantStatus{
		{BuildVariant: "ubuntu2204", BuildID: "b1"},
		{BuildVariant: "windows", BuildID: "b2"},
	}}

	assert.Equal(t, map[string]string{"ubuntu2204": "b1", "windows": "b2"}, version.BuildVariantsMap())
	assert.Empty(t, (&Version{}).BuildVariantsMap())
}

func TestVersionIsPatch(t *testing.T) {
	t.Parallel()

	t.Run("requester field wins when present", func(t *testing.T) {
		t.Parallel()

		assert.True(t, (&Version{Requester: RequesterPatch}).IsPatch())
		assert.True(t, (&Version{Requester: RequesterGithubPullRequest}).IsPatch())
		assert.False(t, (&Version{Requester: RequesterGitter}).IsPatch())
	})

	t.Run("falls back to the version id prefix", func(t *testing.T) {
		t.Parallel()

		// Mainline version ids start with the project name, underscored.
		mainline := &Version{VersionID: "my_project_abcdef123456", Project: "my-project"}
		assert.False(t, mainline.IsPatch())

		patch := &Version{VersionID: "5f0b1a2c3d4e5f6a7b8c9d0e", Project: "my-project"}
		assert.True(t, patch.IsPatch())
	})
}

func TestVersionIsCompleted(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Version{Status: VersionStatusSuccess}).IsCompleted())
	assert.True(t, (&Version{Status: VersionStatusFailed}).IsCompleted())
	assert.False(t, (&Version{Status: VersionStatusCreated}).IsCompleted())
	assert.False(t, (&Version{Status: "started"}).IsCompleted())
}
