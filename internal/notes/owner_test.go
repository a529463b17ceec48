package notes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwnerFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		googleID string
		want     Owner
		wantErr  bool
	}{
		{name: "internal", userID: "7", want: InternalOwner(7)},
		{name: "external", googleID: "g-1", want: ExternalOwner("g-1")},
		{name: "internal wins over external", userID: "7", googleID: "g-1", want: InternalOwner(7)},
		{name: "neither", wantErr: true},
		{name: "non-numeric user id", userID: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OwnerFromQuery(tt.userID, tt.googleID)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMissingOwner)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOwnerFromIDs(t *testing.T) {
	seven := int64(7)
	zero := int64(0)
	gid := "g-1"
	empty := ""

	owner, err := OwnerFromIDs(&seven, nil)
	require.NoError(t, err)
	require.Equal(t, InternalOwner(7), owner)

	owner, err = OwnerFromIDs(nil, &gid)
	require.NoError(t, err)
	require.Equal(t, ExternalOwner("g-1"), owner)

	_, err = OwnerFromIDs(nil, nil)
	require.ErrorIs(t, err, ErrMissingOwner)

	// Zero values count as absent, matching the client's `|| null`.
	_, err = OwnerFromIDs(&zero, &empty)
	require.ErrorIs(t, err, ErrMissingOwner)
}
