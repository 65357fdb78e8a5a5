package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/expiry-deals-service/internal/app/seller/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/seller/domain"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_seller_verification"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/query"
)

// VerificationRepo implements VerificationRepository and VerificationReadModel for Spanner.
type VerificationRepo struct {
	client *spanner.Client
	model  *m_seller_verification.Model
	clock  clock.Clock
}

// NewVerificationRepo creates a new VerificationRepo.
func NewVerificationRepo(client *spanner.Client, clk clock.Clock) *VerificationRepo {
	return &VerificationRepo{
		client: client,
		model:  m_seller_verification.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for a new verification request.
func (r *VerificationRepo) InsertMut(v *domain.SellerVerification) *spanner.Mutation {
	return r.model.InsertMut(verificationToData(v))
}

// UpdateMut creates a mutation for updating a verification (only dirty fields).
func (r *VerificationRepo) UpdateMut(v *domain.SellerVerification) *spanner.Mutation {
	updates := updateColumns(v)
	if len(updates) == 0 {
		return nil
	}

	updates[m_seller_verification.UpdatedAt] = r.clock.Now()

	// Increment version for optimistic locking
	updates[m_seller_verification.Version] = v.Version() + 1

	return r.model.UpdateMut(v.SellerID(), updates)
}

func updateColumns(v *domain.SellerVerification) map[string]interface{} {
	changes := v.Changes()
	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldStatus) {
		updates[m_seller_verification.VerificationStatus] = string(v.Status())
	}

	if changes.Dirty(domain.FieldRejectionReason) {
		if reason := v.RejectionReason(); reason != nil {
			updates[m_seller_verification.RejectionReason] = spanner.NullString{StringVal: *reason, Valid: true}
		} else {
			updates[m_seller_verification.RejectionReason] = spanner.NullString{}
		}
	}

	if changes.Dirty(domain.FieldVerificationDate) {
		if date := v.VerificationDate(); date != nil {
			updates[m_seller_verification.VerificationDate] = spanner.NullTime{Time: *date, Valid: true}
		} else {
			updates[m_seller_verification.VerificationDate] = spanner.NullTime{}
		}
	}

	return updates
}

// GetBySellerID retrieves a verification record, reconstructing the aggregate.
func (r *VerificationRepo) GetBySellerID(ctx context.Context, sellerID string) (*domain.SellerVerification, error) {
	row, err := r.client.Single().ReadRow(ctx, m_seller_verification.TableName, spanner.Key{sellerID}, m_seller_verification.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrVerificationNotFound
		}
		return nil, fmt.Errorf("failed to read seller verification: %w", err)
	}

	var data m_seller_verification.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse seller verification: %w", err)
	}

	return dataToVerification(&data), nil
}

// ListByStatus returns verification records in the given status, newest first.
func (r *VerificationRepo) ListByStatus(ctx context.Context, status domain.Status, limit int) ([]*contracts.VerificationDTO, error) {
	iter := r.client.Single().Query(ctx, listByStatusStatement(status, limit))
	defer iter.Stop()

	var results []*contracts.VerificationDTO
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate seller verifications: %w", err)
		}

		var data m_seller_verification.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse seller verification: %w", err)
		}
		results = append(results, dataToDTO(&data))
	}

	return results, nil
}

func listByStatusStatement(status domain.Status, limit int) spanner.Statement {
	return query.From(m_seller_verification.TableName).
		Select(m_seller_verification.Columns()...).
		Where(query.Eq(m_seller_verification.VerificationStatus, string(status))).
		OrderBy(m_seller_verification.CreatedAt, query.Desc).
		ThenBy(m_seller_verification.SellerID, query.Asc).
		Limit(int64(limit)).
		Build()
}

func verificationToData(v *domain.SellerVerification) *m_seller_verification.Data {
	data := &m_seller_verification.Data{
		SellerID:           v.SellerID(),
		BusinessName:       v.BusinessName(),
		DocumentURL:        spanner.NullString{StringVal: v.DocumentURL(), Valid: v.DocumentURL() != ""},
		VerificationStatus: string(v.Status()),
		Version:            v.Version(),
		CreatedAt:          v.CreatedAt(),
		UpdatedAt:          v.UpdatedAt(),
	}
	if reason := v.RejectionReason(); reason != nil {
		data.RejectionReason = spanner.NullString{StringVal: *reason, Valid: true}
	}
	if date := v.VerificationDate(); date != nil {
		data.VerificationDate = spanner.NullTime{Time: *date, Valid: true}
	}
	return data
}

func dataToVerification(data *m_seller_verification.Data) *domain.SellerVerification {
	reason, date := nullableFields(data)
	return domain.ReconstructSellerVerification(
		data.SellerID,
		data.BusinessName,
		data.DocumentURL.StringVal,
		domain.Status(data.VerificationStatus),
		reason,
		date,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	)
}

func dataToDTO(data *m_seller_verification.Data) *contracts.VerificationDTO {
	reason, date := nullableFields(data)
	return &contracts.VerificationDTO{
		SellerID:         data.SellerID,
		BusinessName:     data.BusinessName,
		DocumentURL:      data.DocumentURL.StringVal,
		Status:           domain.Status(data.VerificationStatus),
		RejectionReason:  reason,
		VerificationDate: date,
		CreatedAt:        data.CreatedAt,
	}
}

func nullableFields(data *m_seller_verification.Data) (*string, *time.Time) {
	var reason *string
	if data.RejectionReason.Valid {
		r := data.RejectionReason.StringVal
		reason = &r
	}
	var date *time.Time
	if data.VerificationDate.Valid {
		d := data.VerificationDate.Time
		date = &d
	}
	return reason, date
}
