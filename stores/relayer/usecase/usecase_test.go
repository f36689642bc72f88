package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-oracle/refapi/base/ctx"
	"github.com/x-oracle/refapi/domain"
	"github.com/x-oracle/refapi/domain/mocks"
)

var mockCtx = ctx.Background()

const mockNow = int64(1659589497)

type testsuite struct {
	suite.Suite

	repo *mocks.RelayerRepo
	im   *impl
}

func (ts *testsuite) SetupTest() {
	ts.repo = &mocks.RelayerRepo{}
	ts.im = New(ts.repo).(*impl)
	timeNow = func() time.Time { return time.Unix(mockNow, 0) }
	newApiKey = func() string { return "generated-api-key" }
}

func (ts *testsuite) TearDownTest() {
	timeNow = time.Now
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestAuthenticate() {
	relayer := &domain.Relayer{Name: "band", ApiKey: "some-key"}
	ts.repo.On("FindOneByApiKey", mockCtx, "some-key").Return(relayer, nil)

	res, err := ts.im.Authenticate(mockCtx, "some-key")
	ts.NoError(err)
	ts.Equal(relayer, res)
}

func (ts *testsuite) TestAuthenticateUnknownKey() {
	ts.repo.On("FindOneByApiKey", mockCtx, "bogus").Return(nil, nil)

	_, err := ts.im.Authenticate(mockCtx, "bogus")
	ts.ErrorIs(err, domain.ErrNotRelayer)
}

func (ts *testsuite) TestAdd() {
	ts.repo.On("FindOneByName", mockCtx, "band").Return(nil, nil)
	ts.repo.On("Create", mockCtx, &domain.Relayer{
		Name:      "band",
		ApiKey:    "generated-api-key",
		CreatedAt: mockNow,
	}).Return(nil)

	relayer, err := ts.im.Add(mockCtx, "band")
	ts.NoError(err)
	ts.Equal("generated-api-key", relayer.ApiKey)
	ts.repo.AssertExpectations(ts.T())
}

func (ts *testsuite) TestAddDuplicateName() {
	ts.repo.On("FindOneByName", mockCtx, "band").Return(&domain.Relayer{Name: "band"}, nil)

	_, err := ts.im.Add(mockCtx, "band")
	ts.ErrorIs(err, domain.ErrConflict)
	ts.repo.AssertNotCalled(ts.T(), "Create")
}

func (ts *testsuite) TestRemove() {
	ts.repo.On("Remove", mockCtx, "band").Return(nil)

	ts.NoError(ts.im.Remove(mockCtx, "band"))
}

func (ts *testsuite) TestList() {
	relayers := []domain.Relayer{{Name: "a"}, {Name: "b"}}
	ts.repo.On("List", mockCtx).Return(relayers, nil)

	res, err := ts.im.List(mockCtx)
	ts.NoError(err)
	ts.Equal(relayers, res)
}
