package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-resolve/internal/usecase"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
)

func (f *deployFixture) acquireContract() *usecase.AcquireContract {
	selector := new(MockSelector)
	resolve := usecase.NewResolveDeployed(f.repo, selector, f.connector, f.progress, discardLogger())
	return usecase.NewAcquireContract(f.repo, selector, f.connector, resolve, f.deployContract(), f.progress, discardLogger())
}

func TestAcquireContract(t *testing.T) {
	t.Run("returns the recorded instance", func(t *testing.T) {
		f := newDeployFixture()
		f.expectArtifact(counterArtifact())
		f.connector.On("Connect", mock.Anything).Return(f.conn, nil)
		f.conn.On("NetworkID", mock.Anything).Return("3", nil).Once()
		f.conn.On("Close").Return()

		result, err := f.acquireContract().Run(context.Background(), usecase.AcquireContractParams{Artifact: "Counter"})
		require.NoError(t, err)

		assert.Equal(t, deployedAddress, result.Address)
		assert.Equal(t, "3", result.NetworkID)
		assert.False(t, result.Deployed)
		f.conn.AssertNumberOfCalls(t, "NetworkID", 1)
		f.conn.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	})

	t.Run("deploys when the network has no entry", func(t *testing.T) {
		f := newDeployFixture()
		f.cfg.Yes = true
		f.expectArtifact(counterArtifact())
		f.expectNode("1337", []byte{0x60, 0x80, 0x60, 0x40, 0x52})
		f.repo.On("RecordDeployment", mock.Anything, counterPath, "1337", contract.Network{
			Address:         createdAddress,
			TransactionHash: createTx,
		}).Return(nil)

		result, err := f.acquireContract().Run(context.Background(), usecase.AcquireContractParams{
			Artifact: "Counter",
			Record:   true,
		})
		require.NoError(t, err)

		assert.Equal(t, createdAddress, result.Address)
		assert.True(t, result.Deployed)
		assert.True(t, result.Recorded)
		require.Len(t, f.progress.infos, 1)
		assert.Contains(t, f.progress.infos[0], "not deployed")

		// the artifact is looked up once, before resolving
		f.repo.AssertNumberOfCalls(t, "Resolve", 1)
		f.repo.AssertExpectations(t)
	})

	t.Run("transport failures are not treated as missing", func(t *testing.T) {
		f := newDeployFixture()
		f.expectArtifact(counterArtifact())
		f.connector.On("Connect", mock.Anything).Return(f.conn, nil)
		f.conn.On("NetworkID", mock.Anything).Return("", errors.New("503 service unavailable"))
		f.conn.On("Close").Return()

		_, err := f.acquireContract().Run(context.Background(), usecase.AcquireContractParams{Artifact: "Counter"})
		assert.ErrorIs(t, err, contract.ErrTransport)
		f.conn.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	})
}
