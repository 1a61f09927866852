package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/dto"
	"github.com/SscSPs/bukukas_app/internal/utils"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	env *testEnv
	ctx context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.env = newTestEnv()
	// Signing in happens before anyone is authenticated
	suite.ctx = context.Background()
	suite.Require().NoError(suite.env.svc.Auth.SeedUsers(suite.ctx))
}

func (suite *AuthServiceTestSuite) TestSeedUsers_OnlyWhenEmpty() {
	suite.Require().NoError(suite.env.svc.Auth.SeedUsers(suite.ctx))

	users, err := suite.env.repos.UserRepo.ListUsers(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal("admin", users[0].Username)
	suite.Equal(domain.RoleAdmin, users[0].Role)
	suite.NotEqual("admin123", users[0].PasswordHash)
	suite.True(utils.CheckPasswordHash("admin123", users[0].PasswordHash))
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	resp, err := suite.env.svc.Auth.Login(suite.ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	suite.Require().NoError(err)
	suite.Equal("admin", resp.User.Username)

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal(resp.User, claims.SessionUser())

	current, err := suite.env.svc.Auth.CurrentUser(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("Administrator", current.FullName)

	logs, err := suite.env.svc.Activity.ListActivityLogs(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(logs, 1)
	suite.Equal("Login ke sistem", logs[0].Description)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	tests := []dto.LoginRequest{
		{Username: "admin", Password: "salah"},
		{Username: "tidak-ada", Password: "admin123"},
	}
	for _, req := range tests {
		_, err := suite.env.svc.Auth.Login(suite.ctx, req)
		suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	}
	_, err := suite.env.svc.Auth.Login(suite.ctx, dto.LoginRequest{Username: "admin"})
	suite.True(errors.Is(err, apperrors.ErrValidation))

	_, err = suite.env.svc.Auth.CurrentUser(suite.ctx)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
}

func (suite *AuthServiceTestSuite) TestLogout_ClearsSession() {
	_, err := suite.env.svc.Auth.Login(suite.ctx, dto.LoginRequest{Username: "admin", Password: "admin123"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.env.svc.Auth.Logout(suite.ctx))

	_, err = suite.env.svc.Auth.CurrentUser(suite.ctx)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))

	logs, err := suite.env.svc.Activity.ListActivityLogs(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("Logout dari sistem", logs[len(logs)-1].Description)
}

func (suite *AuthServiceTestSuite) TestListUsers_HidesPasswords() {
	users, err := suite.env.svc.Auth.ListUsers(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]domain.SessionUser{{Username: "admin", FullName: "Administrator", Role: domain.RoleAdmin}}, users)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
