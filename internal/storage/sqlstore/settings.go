package sqlstore

import (
	"context"
	"fmt"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

func (s *Store) GetSettings(ctx context.Context) (journal.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getSettings(ctx)
}

func (s *Store) getSettings(ctx context.Context) (journal.Settings, error) {
	var st journal.Settings
	err := s.db.QueryRowContext(ctx, `SELECT color_mode, theme_color, font_size, zoom_level, background_gradient
		FROM settings WHERE id = 1`).Scan(&st.ColorMode, &st.ThemeColor, &st.FontSize, &st.ZoomLevel, &st.BackgroundGradient)
	if err != nil {
		return journal.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return st, nil
}

// UpdateSettings applies a partial update; invalid updates change nothing.
func (s *Store) UpdateSettings(ctx context.Context, u journal.SettingsUpdate) (journal.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.getSettings(ctx)
	if err != nil {
		return journal.Settings{}, err
	}
	next, err := current.Apply(u)
	if err != nil {
		return journal.Settings{}, err
	}
	_, err = s.db.ExecContext(ctx, s.rebind(`UPDATE settings SET color_mode = ?, theme_color = ?, font_size = ?,
		zoom_level = ?, background_gradient = ? WHERE id = 1`),
		next.ColorMode, next.ThemeColor, next.FontSize, next.ZoomLevel, next.BackgroundGradient)
	if err != nil {
		return journal.Settings{}, fmt.Errorf("update settings: %w", err)
	}
	return next, nil
}
