package reactions

import (
	"reflect"
	"testing"

	"churchfeed-app/internal/domain/reactions"
)

func TestApplyToggle(t *testing.T) {
	t.Run("toggling on an empty summary adds the viewer's reaction", func(t *testing.T) {
		got := ApplyToggle(nil, reactions.TypeHeart)
		want := []Summary{{Type: reactions.TypeHeart, Count: 1, UserReacted: true}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("toggling the active reaction clears it", func(t *testing.T) {
		cur := []Summary{{Type: reactions.TypeHeart, Count: 1, UserReacted: true}}
		got := ApplyToggle(cur, reactions.TypeHeart)
		if len(got) != 0 {
			t.Errorf("expected empty summary, got %+v", got)
		}
	})

	t.Run("toggling a different type switches, never stacks", func(t *testing.T) {
		cur := []Summary{{Type: reactions.TypeHeart, Count: 1, UserReacted: true}}
		got := ApplyToggle(cur, reactions.TypeLike)
		want := []Summary{{Type: reactions.TypeLike, Count: 1, UserReacted: true}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("other users' counts are preserved through a switch", func(t *testing.T) {
		cur := []Summary{
			{Type: reactions.TypeHeart, Count: 3, UserReacted: true},
			{Type: reactions.TypePrayer, Count: 2},
		}
		got := ApplyToggle(cur, reactions.TypePrayer)
		want := []Summary{
			{Type: reactions.TypeHeart, Count: 2},
			{Type: reactions.TypePrayer, Count: 3, UserReacted: true},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("double toggle is an involution back to the start", func(t *testing.T) {
		cur := []Summary{{Type: reactions.TypePraise, Count: 5}}
		once := ApplyToggle(cur, reactions.TypeHeartHands)
		twice := ApplyToggle(once, reactions.TypeHeartHands)
		if !reflect.DeepEqual(twice, cur) {
			t.Errorf("after double toggle got %+v, want %+v", twice, cur)
		}
	})

	t.Run("at most one entry carries the viewer flag", func(t *testing.T) {
		cur := []Summary{}
		seq := []reactions.Type{
			reactions.TypeHeart, reactions.TypeLike, reactions.TypeLike,
			reactions.TypePrayer, reactions.TypeHeart, reactions.TypeHeart,
		}
		for _, step := range seq {
			cur = ApplyToggle(cur, step)
			flagged := 0
			for _, s := range cur {
				if s.UserReacted {
					flagged++
				}
			}
			if flagged > 1 {
				t.Fatalf("summary %+v has %d flagged entries", cur, flagged)
			}
		}
	})
}
