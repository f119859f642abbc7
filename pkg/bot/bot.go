package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/avetono/jsonbot/internal/logging"
	"github.com/avetono/jsonbot/internal/metrics"
	"github.com/avetono/jsonbot/pkg/domain"
	"github.com/avetono/jsonbot/pkg/ports"
	"github.com/avetono/jsonbot/pkg/session"
	"github.com/avetono/jsonbot/pkg/transform"
)

// Bot routes chat updates through the session state machine and the
// transforms, replying over the transport.
type Bot struct {
	sessions  *session.Manager
	transport ports.Transport
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures the Bot.
type Option func(*Bot)

// WithLogger configures a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// WithMetrics configures Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Bot) {
		b.metrics = m
	}
}

// New creates a Bot.
func New(sessions *session.Manager, transport ports.Transport, opts ...Option) *Bot {
	b := &Bot{
		sessions:  sessions,
		transport: transport,
		logger:    logging.NewNop(),
		metrics:   metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// HandleUpdate processes one inbound event. It returns an error only for
// infrastructure failures (store or transport); user mistakes are answered
// with a corrective reply and leave the session state untouched.
func (b *Bot) HandleUpdate(ctx context.Context, upd domain.Update) error {
	switch {
	case upd.Document != nil:
		b.metrics.Updates.WithLabelValues("document").Inc()
		return b.handleDocument(ctx, upd)
	case strings.HasPrefix(upd.Text, "/"):
		b.metrics.Updates.WithLabelValues("command").Inc()
		return b.handleCommand(ctx, upd)
	default:
		b.metrics.Updates.WithLabelValues("text").Inc()
		return b.handleText(ctx, upd)
	}
}

// --- Commands ---

func (b *Bot) handleCommand(ctx context.Context, upd domain.Update) error {
	fields := strings.Fields(upd.Text)
	cmd := strings.ToLower(fields[0])
	// Group chats address commands as /merge@SomeBot.
	cmd, _, _ = strings.Cut(cmd, "@")

	b.logger.Info("command received", "chat_id", upd.ChatID, "command", cmd)

	switch cmd {
	case "/start", "/help":
		return b.reply(ctx, upd.ChatID, helpText)

	case "/merge":
		return b.begin(ctx, upd.ChatID, domain.ModeMergeCollect, replyMergeStarted)

	case "/concat":
		return b.begin(ctx, upd.ChatID, domain.ModeConcatCollect, replyConcatStarted)

	case "/split":
		return b.beginSplit(ctx, upd.ChatID, fields[1:])

	case "/operation":
		return b.begin(ctx, upd.ChatID, domain.ModeSubtractMain, replySubtractStarted)

	case "/replace":
		return b.begin(ctx, upd.ChatID, domain.ModeReplaceFind, replyReplaceStarted)

	case "/done":
		return b.finalize(ctx, upd.ChatID)

	case "/cancel":
		if err := b.sessions.Delete(ctx, upd.ChatID); err != nil {
			return fmt.Errorf("failed to cancel session: %w", err)
		}
		return b.reply(ctx, upd.ChatID, replyCancelled)

	default:
		return b.reply(ctx, upd.ChatID, replyUnknownCmd)
	}
}

// begin creates (or overwrites) the chat's session in the given mode.
// Stale data from a previous operation never survives: the session is
// rebuilt from scratch. The intro reply goes out only after the session
// is persisted, so a store failure never announces a mode that isn't
// actually active.
func (b *Bot) begin(ctx context.Context, chatID string, mode domain.Mode, intro string) error {
	err := b.sessions.Mutate(ctx, chatID, func(*domain.Session) (*domain.Session, error) {
		return domain.NewSession(mode), nil
	})
	if err != nil {
		return err
	}
	return b.reply(ctx, chatID, intro)
}

func (b *Bot) beginSplit(ctx context.Context, chatID string, args []string) error {
	// Validate n before touching any session state.
	if len(args) < 1 {
		b.reject(domain.ErrInvalidSplitCount)
		return b.reply(ctx, chatID, replySplitMissingN)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		b.reject(domain.ErrInvalidSplitCount)
		return b.reply(ctx, chatID, replySplitBadN)
	}
	if n < 1 {
		b.reject(domain.ErrInvalidSplitCount)
		return b.reply(ctx, chatID, replySplitSmallN)
	}

	err = b.sessions.Mutate(ctx, chatID, func(*domain.Session) (*domain.Session, error) {
		sess := domain.NewSession(domain.ModeSplitPending)
		sess.Parts = n
		return sess, nil
	})
	if err != nil {
		return err
	}
	return b.reply(ctx, chatID, fmt.Sprintf("✂️ Ready to split into %d files. Please upload your JSON file now.", n))
}

// --- Text ---

func (b *Bot) handleText(ctx context.Context, upd domain.Update) error {
	return b.sessions.Mutate(ctx, upd.ChatID, func(sess *domain.Session) (*domain.Session, error) {
		if sess == nil {
			b.reject(domain.ErrNoActiveSession)
			return nil, b.reply(ctx, upd.ChatID, replySelectCmd)
		}

		switch err := sess.IngestText(upd.Text); {
		case err == nil:
		case errors.Is(err, domain.ErrEmptyFindText):
			b.reject(err)
			return b.keep(ctx, sess, upd.ChatID, replyEmptyFind)
		case errors.Is(err, domain.ErrUnexpectedInputKind):
			b.reject(err)
			return b.keep(ctx, sess, upd.ChatID, replyWantFile)
		default:
			return nil, err
		}

		var prompt string
		if sess.Mode == domain.ModeReplaceText {
			prompt = replyReplaceFindSet
		} else {
			prompt = replyReplaceReady
		}
		if err := b.reply(ctx, upd.ChatID, prompt); err != nil {
			return nil, err
		}
		return sess, nil
	})
}

// --- Documents ---

func (b *Bot) handleDocument(ctx context.Context, upd domain.Update) error {
	return b.sessions.Mutate(ctx, upd.ChatID, func(sess *domain.Session) (*domain.Session, error) {
		if sess == nil {
			b.reject(domain.ErrNoActiveSession)
			return nil, b.reply(ctx, upd.ChatID, replySelectCmd)
		}
		if sess.CollectsText() {
			b.reject(domain.ErrUnexpectedInputKind)
			return b.keep(ctx, sess, upd.ChatID, replyWantText)
		}

		list, err := b.fetchList(ctx, upd.Document)
		if err != nil {
			if errors.Is(err, domain.ErrMalformedJSON) || errors.Is(err, domain.ErrInvalidRootShape) {
				// A bad file never corrupts what was already collected.
				b.reject(err)
				return b.keep(ctx, sess, upd.ChatID, replyBadFile)
			}
			return nil, err
		}

		b.logger.Info("file ingested",
			"chat_id", upd.ChatID,
			"file", upd.Document.Name,
			"items", len(list),
			"mode", sess.Mode,
		)

		switch sess.Mode {
		case domain.ModeMergeCollect:
			return b.ingestMerge(ctx, upd.ChatID, sess, list)
		case domain.ModeConcatCollect:
			return b.ingestConcat(ctx, upd.ChatID, sess, list)
		case domain.ModeSplitPending:
			return b.runSplit(ctx, upd.ChatID, sess, list)
		case domain.ModeSubtractMain:
			return b.ingestSubtractMain(ctx, upd.ChatID, sess, list)
		case domain.ModeSubtractFilter:
			return b.ingestSubtractFilter(ctx, upd.ChatID, sess, list)
		case domain.ModeReplaceReady:
			return b.runReplace(ctx, upd.ChatID, sess, list)
		default:
			return nil, fmt.Errorf("session in unexpected mode %q", sess.Mode)
		}
	})
}

func (b *Bot) fetchList(ctx context.Context, doc *domain.Document) (domain.List, error) {
	data, err := b.transport.FetchDocument(ctx, doc.Handle)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %q: %w", doc.Name, err)
	}
	return domain.DecodeList(data)
}

func (b *Bot) ingestMerge(ctx context.Context, chatID string, sess *domain.Session, list domain.List) (*domain.Session, error) {
	var stats transform.MergeStats
	sess.Items, stats = transform.MergeInto(sess.Items, sess.Seen, list)

	msg := fmt.Sprintf("➕ Processed file.\nUnique added: %d\nDuplicates ignored: %d\nTotal unique: %d\nUpload next or /done.",
		stats.Added, stats.Skipped, len(sess.Items))
	if err := b.reply(ctx, chatID, msg); err != nil {
		return nil, err
	}
	return sess, nil
}

func (b *Bot) ingestConcat(ctx context.Context, chatID string, sess *domain.Session, list domain.List) (*domain.Session, error) {
	sess.Items = transform.Concat(sess.Items, list)

	msg := fmt.Sprintf("➕ Processed file.\nItems added: %d\nTotal items: %d\nUpload next or /done.",
		len(list), len(sess.Items))
	if err := b.reply(ctx, chatID, msg); err != nil {
		return nil, err
	}
	return sess, nil
}

func (b *Bot) ingestSubtractMain(ctx context.Context, chatID string, sess *domain.Session, list domain.List) (*domain.Session, error) {
	sess.Items = list
	sess.Mode = domain.ModeSubtractFilter

	msg := fmt.Sprintf("✅ Main loaded (%d items).\nNow upload filter files.", len(list))
	if err := b.reply(ctx, chatID, msg); err != nil {
		return nil, err
	}
	return sess, nil
}

func (b *Bot) ingestSubtractFilter(ctx context.Context, chatID string, sess *domain.Session, list domain.List) (*domain.Session, error) {
	count := transform.CollectKeys(sess.Filter, list)

	msg := fmt.Sprintf("🗑️ Added %d items to filter. Upload next or /done.", count)
	if err := b.reply(ctx, chatID, msg); err != nil {
		return nil, err
	}
	return sess, nil
}

// runSplit is single-shot: the upload itself triggers the transform and
// ends the session.
func (b *Bot) runSplit(ctx context.Context, chatID string, sess *domain.Session, list domain.List) (*domain.Session, error) {
	start := time.Now()
	parts, err := transform.Split(list, sess.Parts)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			// Keep the session; the user can upload a non-empty file.
			b.reject(err)
			return b.keep(ctx, sess, chatID, replyEmptySplit)
		}
		return nil, err
	}

	msg := fmt.Sprintf("✂️ Splitting %d items into %d files...", len(list), sess.Parts)
	if err := b.reply(ctx, chatID, msg); err != nil {
		return nil, err
	}

	for i, part := range parts {
		filename := fmt.Sprintf("Part_%d.json", i+1)
		caption := fmt.Sprintf("Part %d (%d)", i+1, len(part))
		if err := b.emitList(ctx, chatID, filename, part, caption); err != nil {
			return nil, err
		}
	}

	b.metrics.ObserveTransform("split", start)
	return nil, nil
}

// runReplace is single-shot as well.
func (b *Bot) runReplace(ctx context.Context, chatID string, sess *domain.Session, list domain.List) (*domain.Session, error) {
	start := time.Now()
	out, count := transform.Replace(list, sess.Find, sess.Replacement)

	caption := fmt.Sprintf("✅ Replaced in %d items", count)
	if err := b.emitList(ctx, chatID, "Replaced_Output.json", out, caption); err != nil {
		return nil, err
	}

	b.metrics.ObserveTransform("replace", start)
	return nil, nil
}

// --- Finalize ---

func (b *Bot) finalize(ctx context.Context, chatID string) error {
	return b.sessions.Mutate(ctx, chatID, func(sess *domain.Session) (*domain.Session, error) {
		if sess == nil {
			b.reject(domain.ErrNoActiveSession)
			return nil, b.reply(ctx, chatID, replyNoActiveOp)
		}

		switch sess.Mode {
		case domain.ModeMergeCollect, domain.ModeConcatCollect:
			return b.finalizeMerge(ctx, chatID, sess)
		case domain.ModeSubtractMain:
			b.reject(domain.ErrNoMainData)
			return b.keep(ctx, sess, chatID, replyNoMainFile)
		case domain.ModeSubtractFilter:
			return b.finalizeSubtract(ctx, chatID, sess)
		default:
			return b.keep(ctx, sess, chatID, replyNothingDone)
		}
	})
}

func (b *Bot) finalizeMerge(ctx context.Context, chatID string, sess *domain.Session) (*domain.Session, error) {
	if len(sess.Items) == 0 {
		b.reject(domain.ErrEmptyInput)
		return b.keep(ctx, sess, chatID, replyNoData)
	}

	start := time.Now()
	op := "merge"
	filename := fmt.Sprintf("Merged_%d_unique.json", len(sess.Items))
	caption := "✅ Files Merged (Duplicates Removed)"
	saving := fmt.Sprintf("⚙️ Saving merged file (%d unique items)...", len(sess.Items))
	if sess.Mode == domain.ModeConcatCollect {
		op = "concat"
		filename = fmt.Sprintf("Concat_%d_items.json", len(sess.Items))
		caption = "✅ Files Concatenated"
		saving = fmt.Sprintf("⚙️ Saving combined file (%d items)...", len(sess.Items))
	}

	if err := b.reply(ctx, chatID, saving); err != nil {
		return nil, err
	}
	if err := b.emitList(ctx, chatID, filename, sess.Items, caption); err != nil {
		return nil, err
	}

	b.metrics.ObserveTransform(op, start)
	return nil, nil
}

func (b *Bot) finalizeSubtract(ctx context.Context, chatID string, sess *domain.Session) (*domain.Session, error) {
	if err := b.reply(ctx, chatID, "⚙️ Calculating difference..."); err != nil {
		return nil, err
	}

	start := time.Now()
	out, stats := transform.Subtract(sess.Items, sess.Filter)

	filename := fmt.Sprintf("Result_%d_items.json", stats.Remaining)
	caption := fmt.Sprintf("✅ *Done!*\nOriginal: %d\nRemoved: %d\nRemaining: %d",
		stats.Original, stats.Removed, stats.Remaining)
	if err := b.emitList(ctx, chatID, filename, out, caption); err != nil {
		return nil, err
	}

	b.metrics.ObserveTransform("subtract", start)
	return nil, nil
}

// --- Helpers ---

func (b *Bot) reply(ctx context.Context, chatID, text string) error {
	if err := b.transport.SendMessage(ctx, chatID, text); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// keep sends a corrective reply and hands the session back unchanged, so
// rejection paths never mutate or end an operation.
func (b *Bot) keep(ctx context.Context, sess *domain.Session, chatID, text string) (*domain.Session, error) {
	if err := b.reply(ctx, chatID, text); err != nil {
		return nil, err
	}
	return sess, nil
}

// emitList serializes a list and delivers it as a downloadable file. The
// content lives only in memory; the transport owns delivery.
func (b *Bot) emitList(ctx context.Context, chatID, filename string, list domain.List, caption string) error {
	data, err := list.Encode()
	if err != nil {
		return err
	}
	if err := b.transport.SendFile(ctx, chatID, filename, data, caption); err != nil {
		return fmt.Errorf("failed to send file %q: %w", filename, err)
	}
	b.logger.Info("file delivered", "chat_id", chatID, "file", filename, "bytes", len(data))
	return nil
}

func (b *Bot) reject(err error) {
	kind := "internal"
	switch {
	case errors.Is(err, domain.ErrNoActiveSession):
		kind = "no_active_session"
	case errors.Is(err, domain.ErrMalformedJSON):
		kind = "malformed_json"
	case errors.Is(err, domain.ErrInvalidRootShape):
		kind = "invalid_root_shape"
	case errors.Is(err, domain.ErrUnexpectedInputKind):
		kind = "unexpected_input_kind"
	case errors.Is(err, domain.ErrNoMainData):
		kind = "no_main_data"
	case errors.Is(err, domain.ErrEmptyInput):
		kind = "empty_input"
	case errors.Is(err, domain.ErrEmptyFindText):
		kind = "empty_find_text"
	case errors.Is(err, domain.ErrInvalidSplitCount):
		kind = "invalid_split_count"
	}
	b.metrics.Rejections.WithLabelValues(kind).Inc()
	b.logger.Debug("input rejected", "kind", kind)
}
