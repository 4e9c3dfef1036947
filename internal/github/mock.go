package github

import "context"

// MockPullRequestSource provides an in-memory PullRequestSource for tests.
type MockPullRequestSource struct {
	// Data to return
	comments []ReviewComment
	reviews  []Review

	// Error control
	listCommentsError error
	listReviewsError  error

	// Call tracking
	ListReviewCommentsCalls int
	ListReviewsCalls        int
}

// NewMockPullRequestSource creates an empty mock source.
func NewMockPullRequestSource() *MockPullRequestSource {
	return &MockPullRequestSource{}
}

// Configuration methods

func (m *MockPullRequestSource) SetReviewComments(comments []ReviewComment) {
	m.comments = comments
}

func (m *MockPullRequestSource) SetReviews(reviews []Review) {
	m.reviews = reviews
}

func (m *MockPullRequestSource) SetListReviewCommentsError(err error) {
	m.listCommentsError = err
}

func (m *MockPullRequestSource) SetListReviewsError(err error) {
	m.listReviewsError = err
}

// PullRequestSource implementation

func (m *MockPullRequestSource) ListReviewComments(ctx context.Context) ([]ReviewComment, error) {
	m.ListReviewCommentsCalls++
	if m.listCommentsError != nil {
		return nil, m.listCommentsError
	}
	return m.comments, nil
}

func (m *MockPullRequestSource) ListReviews(ctx context.Context) ([]Review, error) {
	m.ListReviewsCalls++
	if m.listReviewsError != nil {
		return nil, m.listReviewsError
	}
	return m.reviews, nil
}

// Ensure MockPullRequestSource implements PullRequestSource
var _ PullRequestSource = (*MockPullRequestSource)(nil)
