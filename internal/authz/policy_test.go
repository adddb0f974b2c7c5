package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/keeperbase/keeperbase/internal/models"
)

func TestCanOwnerMatrix(t *testing.T) {
	owner := Identity{ID: uuid.New(), Role: models.RoleCoach}
	stranger := Identity{ID: uuid.New(), Role: models.RoleCoach}
	admin := Identity{ID: uuid.New(), Role: models.RoleAdmin}

	team := &models.Team{ID: uuid.New(), OwnerID: owner.ID}

	require.True(t, Can(owner, team, OpRead))
	require.True(t, Can(owner, team, OpWrite))

	require.False(t, Can(stranger, team, OpRead))
	require.False(t, Can(stranger, team, OpWrite))

	// The admin role gates the admin routes only. On coach-owned rows an
	// admin is just another non-owner.
	require.False(t, Can(admin, team, OpRead))
	require.False(t, Can(admin, team, OpWrite))
}

func TestCanPublicTasksReadOnly(t *testing.T) {
	owner := Identity{ID: uuid.New(), Role: models.RoleCoach}
	stranger := Identity{ID: uuid.New(), Role: models.RoleCoach}

	public := &models.Task{ID: uuid.New(), OwnerID: owner.ID, IsPublic: true}
	private := &models.Task{ID: uuid.New(), OwnerID: owner.ID, IsPublic: false}

	// The public flag opens reads to any authenticated coach, never writes.
	require.True(t, Can(stranger, public, OpRead))
	require.False(t, Can(stranger, public, OpWrite))

	require.False(t, Can(stranger, private, OpRead))
	require.False(t, Can(stranger, private, OpWrite))

	require.True(t, Can(owner, public, OpWrite))
}

func TestRequireReturnsForbidden(t *testing.T) {
	stranger := Identity{ID: uuid.New(), Role: models.RoleCoach}
	team := &models.Team{ID: uuid.New(), OwnerID: uuid.New()}

	require.NoError(t, Require(Identity{ID: team.OwnerID, Role: models.RoleCoach}, team, OpWrite))
	require.ErrorIs(t, Require(stranger, team, OpWrite), ErrForbidden)
}
