// internal/services/settings_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	env *testEnv
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
}

func (suite *SettingsServiceTestSuite) TestSettingsDefaultToEmpty() {
	settings, err := suite.env.settings.Settings("buyer:bob")
	suite.Require().NoError(err)
	suite.NotNil(settings)
	suite.Empty(settings)
}

func (suite *SettingsServiceTestSuite) TestSaveAndReloadSettings() {
	err := suite.env.settings.SaveSettings("buyer:bob", models.JSONB{
		"language": "id",
		"theme":    "dark",
	})
	suite.Require().NoError(err)

	settings, err := suite.env.settings.Settings("buyer:bob")
	suite.Require().NoError(err)
	suite.Equal("id", settings["language"])
	suite.Equal("dark", settings["theme"])
}

func (suite *SettingsServiceTestSuite) TestNotificationsAccumulateInOrder() {
	suite.env.settings.Notify("seller:alice", "order", "first")
	suite.env.settings.Notify("seller:alice", "article", "second")

	notifications, err := suite.env.settings.Notifications("seller:alice")
	suite.Require().NoError(err)
	suite.Require().Len(notifications, 2)
	suite.Equal("first", notifications[0].Message)
	suite.Equal("second", notifications[1].Message)

	other, err := suite.env.settings.Notifications("buyer:bob")
	suite.Require().NoError(err)
	suite.Empty(other)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
