package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wftrack/loadout-api/internal/errors"
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
			message:  "build not found",
			expected: "NOT_FOUND: build not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
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
	err := errors.NotFound("build not found").
		WithMeta("build_id", "123").
		WithMeta("item", "Kuva Bramma")

	s.Assert().Equal("123", err.Meta["build_id"])
	s.Assert().Equal("Kuva Bramma", err.Meta["item"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load builds")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load builds", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.NotFoundf("build %s not found", "abc")
	wrapped := errors.Wrap(inner, "delete failed")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "ignored"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	testCases := []struct {
		name     string
		err      error
		expected errors.Code
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: errors.CodeOK,
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("boom"),
			expected: errors.CodeInternal,
		},
		{
			name:     "coded error",
			err:      errors.InvalidArgument("bad payload"),
			expected: errors.CodeInvalidArgument,
		},
		{
			name:     "wrapped coded error",
			err:      fmt.Errorf("outer: %w", errors.Unavailable("redis down")),
			expected: errors.CodeUnavailable,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, errors.GetCode(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Assert().Equal(http.StatusNotFound, errors.CodeNotFound.HTTPStatus())
	s.Assert().Equal(http.StatusBadRequest, errors.CodeInvalidArgument.HTTPStatus())
	s.Assert().Equal(http.StatusInternalServerError, errors.CodeInternal.HTTPStatus())
	s.Assert().Equal(http.StatusServiceUnavailable, errors.CodeUnavailable.HTTPStatus())
	s.Assert().Equal(http.StatusInternalServerError, errors.Code("BOGUS").HTTPStatus())
}
