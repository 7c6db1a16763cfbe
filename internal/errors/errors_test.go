package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tavernkeep/guild-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "profile not found",
			expected: "NOT_FOUND: profile not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "daily reward already claimed today",
			expected: "FAILED_PRECONDITION: daily reward already claimed today",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.ResourceExhausted("action is on cooldown").
		WithMeta("seconds_remaining", 4).
		WithMeta("user_id", "user_123")

	s.Assert().Equal(4, err.Meta["seconds_remaining"])
	s.Assert().Equal("user_123", err.Meta["user_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(baseErr, "failed to get profile")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to get profile", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.NotFound("profile not found")
	wrapped := errors.Wrap(inner, "failed to claim daily reward")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("key does not exist")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeNotFound, "item not owned")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should vanish"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should vanish"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeAlreadyExists, errors.GetCode(errors.AlreadyExists("profile exists")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("profile not found", errors.GetMessage(errors.NotFound("profile not found")))
	s.Assert().Equal("plain error", errors.GetMessage(fmt.Errorf("plain error")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code errors.Code
		want int
	}{
		{errors.CodeNotFound, 404},
		{errors.CodeAlreadyExists, 409},
		{errors.CodeResourceExhausted, 429},
		{errors.CodeFailedPrecondition, 412},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeInternal, 500},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.want, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	err := errors.NotFoundf("item %q not found", "Iron Sword")
	s.Assert().True(errors.Is(err, errors.NotFound("anything")))
	s.Assert().False(errors.Is(err, errors.Internal("anything")))
}
