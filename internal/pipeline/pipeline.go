// Package pipeline owns the full aggregation cycle: fetch every source,
// normalize, filter, classify, dedupe, then render and dispatch the digests.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jobsentry/jobsentry/internal/classify"
	"github.com/jobsentry/jobsentry/internal/dedup"
	"github.com/jobsentry/jobsentry/internal/digest"
	"github.com/jobsentry/jobsentry/internal/filter"
	"github.com/jobsentry/jobsentry/internal/model"
	"github.com/jobsentry/jobsentry/internal/normalize"
)

// Options are the pipeline's tunables.
type Options struct {
	FetchTimeout time.Duration // per-source fetch budget
	DigestMax    int           // max postings in the mail digest
	ChatLimit    int           // max postings in the chat short list
}

// Pipeline wires the stages together. Mail is required; chat may be nil,
// which means the channel is configured absent and is silently skipped.
type Pipeline struct {
	adapters   []model.SourceAdapter
	normalizer *normalize.Normalizer
	filter     *filter.Engine
	classifier *classify.Classifier
	mail       model.Notifier
	chat       model.Notifier
	opts       Options
	logger     *slog.Logger
}

// New creates a pipeline over the given adapters in priority order: earlier
// adapters win dedup collisions.
func New(
	adapters []model.SourceAdapter,
	normalizer *normalize.Normalizer,
	filterEngine *filter.Engine,
	classifier *classify.Classifier,
	mailChannel model.Notifier,
	chatChannel model.Notifier,
	opts Options,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		adapters:   adapters,
		normalizer: normalizer,
		filter:     filterEngine,
		classifier: classifier,
		mail:       mailChannel,
		chat:       chatChannel,
		opts:       opts,
		logger:     logger,
	}
}

// Run executes one full cycle and returns its accounting. The returned
// error is non-nil only when the mail channel fails: source faults degrade
// to empty contributions and chat faults are logged and swallowed.
func (p *Pipeline) Run(ctx context.Context) (*model.RunResult, error) {
	res := &model.RunResult{}

	raws := p.fetchAll(ctx, res)

	keptBySource := make(map[string]int)
	var kept []model.Posting
	for _, raw := range raws {
		posting, ok := p.normalizer.Normalize(raw)
		if !ok {
			res.Invalid++
			continue
		}
		if !p.filter.Relevant(posting.Title, raw.Description) {
			res.Filtered++
			continue
		}
		posting.Category = p.classifier.Classify(posting.Title)
		kept = append(kept, posting)
		keptBySource[posting.Source]++
	}
	for i := range res.Reports {
		res.Reports[i].Kept = keptBySource[res.Reports[i].Source]
	}

	unique := dedup.Dedupe(kept)
	res.Duplicates = len(kept) - len(unique)
	res.Postings = unique
	res.ByCategory = partition(unique)

	p.logger.Info("run assembled",
		"fetched", len(raws),
		"invalid", res.Invalid,
		"filtered", res.Filtered,
		"duplicates", res.Duplicates,
		"final", len(unique),
		"full_time", len(res.ByCategory[model.CategoryFullTime]),
		"internship", len(res.ByCategory[model.CategoryInternship]),
	)

	if err := p.dispatch(ctx, unique); err != nil {
		return res, err
	}
	return res, nil
}

// fetchAll runs every adapter concurrently, each with its own timeout.
// Results land in per-adapter slots so concatenation order stays equal to
// registration order regardless of completion order. A failed source is
// recorded and contributes nothing; it never cancels its siblings.
func (p *Pipeline) fetchAll(ctx context.Context, res *model.RunResult) []model.RawCandidate {
	type slot struct {
		raws []model.RawCandidate
		err  error
	}
	slots := make([]slot, len(p.adapters))

	var g errgroup.Group
	for i, a := range p.adapters {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, p.opts.FetchTimeout)
			defer cancel()

			raws, err := a.Fetch(fctx)
			slots[i] = slot{raws: raws, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var all []model.RawCandidate
	for i, a := range p.adapters {
		s := slots[i]
		if s.err != nil {
			p.logger.Error("source failed", "source", a.Name(), "error", s.err)
			res.Reports = append(res.Reports, model.SourceReport{Source: a.Name(), Err: s.err})
			continue
		}
		p.logger.Info("source fetched", "source", a.Name(), "candidates", len(s.raws))
		res.Reports = append(res.Reports, model.SourceReport{Source: a.Name(), Fetched: len(s.raws)})
		all = append(all, s.raws...)
	}
	return all
}

// dispatch sends the mail digest (always) and the chat short list (when the
// channel is configured and there is something to say).
func (p *Pipeline) dispatch(ctx context.Context, postings []model.Posting) error {
	body := digest.RenderDigest(postings, p.opts.DigestMax)
	if err := p.mail.Send(ctx, body); err != nil {
		return fmt.Errorf("primary channel: %w", err)
	}

	if p.chat == nil {
		return nil
	}
	if len(postings) == 0 {
		p.logger.Info("skipping chat channel, no postings")
		return nil
	}

	text := digest.RenderShortList(postings, p.opts.ChatLimit)
	if err := p.chat.Send(ctx, text); err != nil {
		// Secondary channel failure never fails the run.
		p.logger.Error("chat dispatch failed", "channel", p.chat.Name(), "error", err)
	}
	return nil
}

func partition(postings []model.Posting) map[model.Category][]model.Posting {
	out := make(map[model.Category][]model.Posting)
	for _, p := range postings {
		out[p.Category] = append(out[p.Category], p)
	}
	return out
}
