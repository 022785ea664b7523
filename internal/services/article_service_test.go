// internal/services/article_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

type ArticleServiceTestSuite struct {
	suite.Suite
	env *testEnv
}

func (suite *ArticleServiceTestSuite) SetupTest() {
	suite.env = newTestEnv(suite.T())
}

func (suite *ArticleServiceTestSuite) createDraft(author string) *models.Article {
	article, err := suite.env.articles.CreateArticle(author, &CreateArticleRequest{
		Title:    "Rotasi tanaman untuk pemula",
		Category: "farming",
		Body:     "Menanam jenis tanaman berbeda setiap musim menjaga kesehatan tanah.",
	})
	suite.Require().NoError(err)
	return article
}

func (suite *ArticleServiceTestSuite) TestDraftIsInvisibleToReaders() {
	suite.createDraft("farmer:carol")

	published, err := suite.env.articles.PublishedArticles()
	suite.Require().NoError(err)
	suite.Empty(published)

	pending, err := suite.env.articles.PendingArticles()
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *ArticleServiceTestSuite) TestSubmitApprovePublishFlow() {
	article := suite.createDraft("farmer:carol")

	submitted, err := suite.env.articles.SubmitArticle("farmer:carol", article.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ArticleStatusPending, submitted.Status)

	pending, err := suite.env.articles.PendingArticles()
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)

	approved, err := suite.env.articles.ReviewArticle(article.ID, true)
	suite.Require().NoError(err)
	suite.Equal(models.ArticleStatusPublished, approved.Status)

	published, err := suite.env.articles.PublishedArticles()
	suite.Require().NoError(err)
	suite.Require().Len(published, 1)
	suite.Equal(article.ID, published[0].ID)

	notifications, err := suite.env.settings.Notifications("farmer:carol")
	suite.Require().NoError(err)
	suite.Require().NotEmpty(notifications)
	suite.Equal("article", notifications[0].Type)
}

func (suite *ArticleServiceTestSuite) TestRejectedArticleReturnsToDraftOnEdit() {
	article := suite.createDraft("farmer:carol")

	_, err := suite.env.articles.SubmitArticle("farmer:carol", article.ID)
	suite.Require().NoError(err)

	rejected, err := suite.env.articles.ReviewArticle(article.ID, false)
	suite.Require().NoError(err)
	suite.Equal(models.ArticleStatusRejected, rejected.Status)

	body := "Versi revisi dengan contoh jadwal rotasi yang lebih jelas."
	edited, err := suite.env.articles.UpdateArticle("farmer:carol", article.ID, &UpdateArticleRequest{
		Body: &body,
	})
	suite.Require().NoError(err)
	suite.Equal(models.ArticleStatusDraft, edited.Status)
}

func (suite *ArticleServiceTestSuite) TestSubmitFromNonDraftIsIgnored() {
	article := suite.createDraft("farmer:carol")

	_, err := suite.env.articles.SubmitArticle("farmer:carol", article.ID)
	suite.Require().NoError(err)

	// Submitting again while pending changes nothing.
	again, err := suite.env.articles.SubmitArticle("farmer:carol", article.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ArticleStatusPending, again.Status)

	pending, err := suite.env.articles.PendingArticles()
	suite.Require().NoError(err)
	suite.Len(pending, 1)
}

func (suite *ArticleServiceTestSuite) TestReviewOfNonPendingIsIgnored() {
	article := suite.createDraft("farmer:carol")

	unchanged, err := suite.env.articles.ReviewArticle(article.ID, true)
	suite.Require().NoError(err)
	suite.Equal(models.ArticleStatusDraft, unchanged.Status)
}

func (suite *ArticleServiceTestSuite) TestOnlyAuthorCanEditOrSubmit() {
	article := suite.createDraft("farmer:carol")

	title := "Hijacked"
	_, err := suite.env.articles.UpdateArticle("farmer:mallory", article.ID, &UpdateArticleRequest{
		Title: &title,
	})
	suite.ErrorIs(err, ErrForbidden)

	_, err = suite.env.articles.SubmitArticle("farmer:mallory", article.ID)
	suite.ErrorIs(err, ErrForbidden)
}

func (suite *ArticleServiceTestSuite) TestReadArticleBumpsViewCount() {
	article := suite.createDraft("farmer:carol")
	_, err := suite.env.articles.SubmitArticle("farmer:carol", article.ID)
	suite.Require().NoError(err)
	_, err = suite.env.articles.ReviewArticle(article.ID, true)
	suite.Require().NoError(err)

	first, err := suite.env.articles.ReadArticle(article.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), first.ViewCount)

	second, err := suite.env.articles.ReadArticle(article.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), second.ViewCount)
}

func (suite *ArticleServiceTestSuite) TestReadingUnpublishedArticleIsNotFound() {
	article := suite.createDraft("farmer:carol")

	_, err := suite.env.articles.ReadArticle(article.ID)
	suite.ErrorIs(err, ErrNotFound)
}

func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}
