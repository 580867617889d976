package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/ptcharoen/agrirot/internal/domain"
	"github.com/ptcharoen/agrirot/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const fetchRetries = 3

// BackfillMoAGroups fetches the published mechanism tables for each
// classification system from baseURL and upserts them into the catalog.
// Page layout: one table#moa-groups with td cells code, mechanism, risk.
func (s *Service) BackfillMoAGroups(ctx context.Context, baseURL string) ([]*domain.MoAGroup, error) {
	systems := []string{domain.SystemIRAC, domain.SystemFRAC, domain.SystemHRAC}

	upserted := make([]*domain.MoAGroup, 0, 64)
	upsertedMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)

	for _, system := range systems {
		system := system
		eg.Go(func() error {
			pageURL := fmt.Sprintf("%s/%s", strings.TrimRight(baseURL, "/"), strings.ToLower(system))
			doc, err := fetchDocument(egCtx, pageURL)
			if err != nil {
				return fmt.Errorf("fetchDocument %s: %w", pageURL, err)
			}

			groups, err := parseMoATable(system, doc)
			if err != nil {
				return fmt.Errorf("parseMoATable %s: %w", system, err)
			}

			for _, group := range groups {
				saved, err := s.store.UpsertMoAGroup(egCtx, group)
				if err != nil {
					return fmt.Errorf("store.UpsertMoAGroup %s/%s: %w", system, group.MoACode, err)
				}

				upsertedMx.Lock()
				upserted = append(upserted, saved)
				upsertedMx.Unlock()
			}

			logger.Infof(ctx, "backfilled %d %s groups", len(groups), system)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return upserted, nil
}

// fetchDocument gets the page with a few retries; reference pages are
// read-only so retrying cannot double-apply anything.
func fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	var doc *goquery.Document

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("goquery.NewDocumentFromReader: %w", err))
		}

		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return doc, nil
}

func parseMoATable(system string, doc *goquery.Document) ([]*domain.MoAGroup, error) {
	groups := make([]*domain.MoAGroup, 0, 32)

	var parseErr error
	doc.Find("table#moa-groups tbody tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
		code := strings.TrimSpace(tr.Find("td.code").Text())
		mechanism := strings.TrimSpace(tr.Find("td.mechanism").Text())
		risk := strings.TrimSpace(strings.ToLower(tr.Find("td.risk").Text()))

		if code == "" || mechanism == "" {
			parseErr = fmt.Errorf("row %d: missing code or mechanism", i)
			return false
		}

		switch domain.ResistanceRisk(risk) {
		case domain.ResistanceRiskLow, domain.ResistanceRiskMedium, domain.ResistanceRiskHigh:
		default:
			parseErr = fmt.Errorf("row %d: unknown resistance risk %q", i, risk)
			return false
		}

		groups = append(groups, &domain.MoAGroup{
			ClassificationSystem: system,
			MoACode:              code,
			MechanismName:        mechanism,
			ResistanceRisk:       domain.ResistanceRisk(risk),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no rows found in moa-groups table")
	}

	return groups, nil
}
