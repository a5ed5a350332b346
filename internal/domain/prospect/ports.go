package prospect

import "context"

type ProspectFileRepository interface {
	Create(ctx context.Context, file ProspectFile) (*ProspectFile, error)
	FindByDigest(ctx context.Context, digest string) (*ProspectFile, error)
	FindByDigestAndMapping(ctx context.Context, digest string, mapping ColumnMapping) (*ProspectFile, error)
	GetByRequestID(ctx context.Context, requestID string, userID int64) (*ProspectFile, error)
}

type ProspectQueryRepository interface {
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]Prospect, int64, error)
}

type UserRepository interface {
	FindByAPIToken(ctx context.Context, token string) (*User, error)
}
