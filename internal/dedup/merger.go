package dedup

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vacantry/housing-backend/internal/normalization"
	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/repos"
	"github.com/vacantry/housing-backend/internal/types"
)

// MergeError wraps any failure inside the transactional consolidation with the
// source owner it was processing. The transaction is rolled back before the
// error propagates.
type MergeError struct {
	SourceID uuid.UUID
	Err      error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge failed for owner %s: %v", e.SourceID, e.Err)
}

func (e *MergeError) Unwrap() error { return e.Err }

// Merger consolidates every reference to cleanly matched duplicates onto the
// comparison's source owner inside one transaction.
type Merger struct {
	db         *gorm.DB
	owners     repos.OwnerRepo
	links      repos.HousingOwnerRepo
	events     repos.EventRepo
	notes      repos.OwnerNoteRepo
	merges     repos.OwnerMergeRepo
	classifier *Classifier
	report     *Report
	log        *logger.Logger
}

func NewMerger(
	db *gorm.DB,
	owners repos.OwnerRepo,
	links repos.HousingOwnerRepo,
	events repos.EventRepo,
	notes repos.OwnerNoteRepo,
	merges repos.OwnerMergeRepo,
	classifier *Classifier,
	report *Report,
	baseLog *logger.Logger,
) *Merger {
	return &Merger{
		db:         db,
		owners:     owners,
		links:      links,
		events:     events,
		notes:      notes,
		merges:     merges,
		classifier: classifier,
		report:     report,
		log:        baseLog.With("component", "Merger"),
	}
}

// Merge performs the consolidation for one comparison. Comparisons flagged for
// review are left to the manual workflow. A source whose row is already gone
// was consumed by an earlier merge of this run; skipping it makes Merge
// idempotent under at-least-once delivery.
func (m *Merger) Merge(ctx context.Context, comparison *Comparison) error {
	if comparison.NeedsReview {
		m.log.Debug("Comparison needs manual review, skipping merge", "owner_id", comparison.Source.ID)
		return nil
	}

	exists, err := m.owners.Exists(ctx, nil, comparison.Source.ID)
	if err != nil {
		return &MergeError{SourceID: comparison.Source.ID, Err: err}
	}
	if !exists {
		m.log.Debug("Source owner already removed, skipping merge", "owner_id", comparison.Source.ID)
		return nil
	}

	keeping := comparison.Source
	removing, err := m.selectRemoving(ctx, keeping, comparison.Duplicates)
	if err != nil {
		return &MergeError{SourceID: keeping.ID, Err: err}
	}
	if len(removing) == 0 {
		return nil
	}
	removingIDs := make([]uuid.UUID, len(removing))
	for i, r := range removing {
		removingIDs[i] = r.Owner.ID
	}

	var removedOwners, removedLinks int64
	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		involved := append([]uuid.UUID{keeping.ID}, removingIDs...)
		links, err := m.links.FindByOwnerIDs(ctx, tx, involved)
		if err != nil {
			return err
		}

		// Reassigning two links of the same housing onto the keeper would
		// collide; drop all but the lowest-ranked link per housing first.
		duplicates := duplicateHousingLinks(links)
		removedLinks, err = m.links.DeleteLinks(ctx, tx, duplicates)
		if err != nil {
			return err
		}

		if _, err := m.links.ReassignOwner(ctx, tx, removingIDs, keeping.ID); err != nil {
			return err
		}
		if _, err := m.events.ReassignOwner(ctx, tx, removingIDs, keeping.ID); err != nil {
			return err
		}
		if _, err := m.events.ReassignOwnerArchived(ctx, tx, removingIDs, keeping.ID); err != nil {
			return err
		}
		if _, err := m.notes.ReassignOwner(ctx, tx, removingIDs, keeping.ID); err != nil {
			return err
		}

		removedOwners, err = m.owners.DeleteByIDs(ctx, tx, removingIDs)
		if err != nil {
			return err
		}

		if fields := mergedFields(keeping, removing); len(fields) > 0 {
			if err := m.owners.UpdateFields(ctx, tx, keeping.ID, fields); err != nil {
				return err
			}
		}

		audit := make([]*types.OwnerMerge, len(removing))
		for i, r := range removing {
			audit[i] = &types.OwnerMerge{
				ID:              uuid.New(),
				KeptOwnerID:     keeping.ID,
				RemovedOwnerID:  r.Owner.ID,
				RemovedFullName: r.Owner.FullName,
				Score:           r.Score,
			}
		}
		if _, err := m.merges.Create(ctx, tx, audit); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return &MergeError{SourceID: keeping.ID, Err: err}
	}

	m.report.AddRemoved(removedOwners, removedLinks)
	m.log.Info("Owners merged",
		"kept_owner_id", keeping.ID,
		"removed_owners", removedOwners,
		"removed_housing_links", removedLinks,
	)
	return nil
}

// selectRemoving keeps only duplicates that are an outright match and that do
// not trigger the review policy when weighed alone against the source. The
// single-candidate check is stricter than the aggregate one: a birth-date
// conflict with any individual duplicate disqualifies it. Candidates whose row
// is already gone are dropped, so redelivering a comparison after a successful
// merge mutates nothing.
func (m *Merger) selectRemoving(ctx context.Context, keeping *types.Owner, duplicates []ScoredOwner) ([]ScoredOwner, error) {
	var qualified []ScoredOwner
	for _, duplicate := range duplicates {
		if !m.classifier.IsMatch(duplicate.Score) {
			continue
		}
		if m.classifier.NeedsManualReview(keeping, []ScoredOwner{duplicate}) {
			continue
		}
		qualified = append(qualified, duplicate)
	}
	if len(qualified) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(qualified))
	for i, q := range qualified {
		ids[i] = q.Owner.ID
	}
	current, err := m.owners.GetByIDs(ctx, nil, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*types.Owner, len(current))
	for _, owner := range current {
		byID[owner.ID] = owner
	}

	removing := make([]ScoredOwner, 0, len(qualified))
	for _, q := range qualified {
		owner, ok := byID[q.Owner.ID]
		if !ok {
			continue
		}
		removing = append(removing, ScoredOwner{Owner: owner, Score: q.Score})
	}
	return removing, nil
}

type housingKey struct {
	geoCode string
	id      uuid.UUID
}

// duplicateHousingLinks returns, for every housing linked more than once among
// the given links, all links except the one with the lowest rank.
func duplicateHousingLinks(links []*types.HousingOwner) []*types.HousingOwner {
	byHousing := make(map[housingKey][]*types.HousingOwner)
	order := make([]housingKey, 0, len(links))
	for _, link := range links {
		key := housingKey{geoCode: link.HousingGeoCode, id: link.HousingID}
		if _, ok := byHousing[key]; !ok {
			order = append(order, key)
		}
		byHousing[key] = append(byHousing[key], link)
	}

	var duplicates []*types.HousingOwner
	for _, key := range order {
		group := byHousing[key]
		if len(group) < 2 {
			continue
		}
		lowest := group[0]
		for _, link := range group[1:] {
			if link.Rank < lowest.Rank {
				lowest = link
			}
		}
		for _, link := range group {
			if link != lowest {
				duplicates = append(duplicates, link)
			}
		}
	}
	return duplicates
}

// mergedFields computes the keeper's updated columns with a first-non-nil scan
// across [keeper, removed...]. The address comes from whichever owner has the
// longest line list, earlier owners winning ties, and is normalized before
// being written back.
func mergedFields(keeping *types.Owner, removing []ScoredOwner) map[string]interface{} {
	scan := make([]*types.Owner, 0, len(removing)+1)
	scan = append(scan, keeping)
	for _, r := range removing {
		scan = append(scan, r.Owner)
	}

	fields := make(map[string]interface{})
	for _, owner := range scan {
		if _, ok := fields["administrator"]; !ok && owner.Administrator != nil {
			fields["administrator"] = *owner.Administrator
		}
		if _, ok := fields["email"]; !ok && owner.Email != nil {
			fields["email"] = *owner.Email
		}
		if _, ok := fields["phone"]; !ok && owner.Phone != nil {
			fields["phone"] = *owner.Phone
		}
		if _, ok := fields["kind"]; !ok && owner.Kind != nil {
			fields["kind"] = *owner.Kind
		}
		if _, ok := fields["kind_detail"]; !ok && owner.KindDetail != nil {
			fields["kind_detail"] = *owner.KindDetail
		}
		if _, ok := fields["birth_date"]; !ok && owner.BirthDate != nil {
			fields["birth_date"] = *owner.BirthDate
		}
	}

	longest := keeping
	for _, owner := range scan[1:] {
		if len(owner.RawAddress) > len(longest.RawAddress) {
			longest = owner
		}
	}
	if len(longest.RawAddress) > 0 {
		fields["raw_address"] = datatypes.JSONSlice[string](normalization.NormalizeAddressLines(longest.RawAddress))
	}
	return fields
}
