package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	s := New()
	s.Set("k", NewStr("v"), SetOpts{})
	v, err := s.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", v.Str)

	_, _, has, err := s.GetValAndDeadline("k")
	require.NoError(t, err)
	require.False(t, has)
}

func TestSetWithDeadlineExpires(t *testing.T) {
	clock := NewFakeClock(1000)
	s := NewWithClock(clock)

	s.Set("k", NewStr("v"), SetOpts{HasDeadline: true, Deadline: 1005})
	v, err := s.Get("k")
	require.NoError(t, err)
	require.Equal(t, "v", v.Str)

	clock.Set(1004.999)
	_, err = s.Get("k")
	require.NoError(t, err)

	clock.Set(1005)
	_, err = s.Get("k")
	require.ErrorIs(t, err, ErrKeyError)
}

func TestSetKeepTTL(t *testing.T) {
	clock := NewFakeClock(0)
	s := NewWithClock(clock)
	s.Set("k", NewStr("v1"), SetOpts{HasDeadline: true, Deadline: 100})
	s.Set("k", NewStr("v2"), SetOpts{KeepDeadline: true})

	_, dl, has, err := s.GetValAndDeadline("k")
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, float64(100), dl)
}

func TestSetWithoutDeadlineClearsIt(t *testing.T) {
	s := New()
	s.Set("k", NewStr("v1"), SetOpts{HasDeadline: true, Deadline: 99999999999})
	s.Set("k", NewStr("v2"), SetOpts{})

	_, _, has, err := s.GetValAndDeadline("k")
	require.NoError(t, err)
	require.False(t, has)
}

func TestDeleteCountsOnlyLiveKeys(t *testing.T) {
	clock := NewFakeClock(0)
	s := NewWithClock(clock)
	s.Set("a", NewStr("1"), SetOpts{})
	s.Set("b", NewStr("2"), SetOpts{HasDeadline: true, Deadline: 10})
	clock.Set(20) // b now expired

	n := s.Delete([]string{"a", "b", "nonexistent"})
	require.Equal(t, 1, n)
}

func TestKeysMatchesAndEvictsExpired(t *testing.T) {
	clock := NewFakeClock(0)
	s := NewWithClock(clock)
	s.Set("abc", NewStr("1"), SetOpts{})
	s.Set("abd", NewStr("2"), SetOpts{HasDeadline: true, Deadline: 10})
	clock.Set(20)

	keys := s.Keys(func(k string) bool { return k == "abc" || k == "abd" })
	require.ElementsMatch(t, []string{"abc"}, keys)

	_, err := s.Get("abd")
	require.ErrorIs(t, err, ErrKeyError)
}

func TestSetDeadlineRequiresExistingKey(t *testing.T) {
	s := New()
	err := s.SetDeadline("missing", 0, false)
	require.ErrorIs(t, err, ErrKeyError)

	s.Set("k", NewStr("v"), SetOpts{HasDeadline: true, Deadline: 99999999999})
	require.NoError(t, s.SetDeadline("k", 0, false))
	_, _, has, err := s.GetValAndDeadline("k")
	require.NoError(t, err)
	require.False(t, has)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "storage")

	s := New()
	s.Set("str", NewStr("hello"), SetOpts{})
	s.Set("list", NewList([]string{"a", "b", "c"}), SetOpts{})
	s.Set("hash", NewHash(map[string]string{"f1": "v1", "f2": "v2"}), SetOpts{})
	s.Set("ttl", NewStr("expiring"), SetOpts{HasDeadline: true, Deadline: 99999999999.5})

	require.NoError(t, s.Save(prefix))

	loaded := New()
	require.NoError(t, loaded.Load(prefix))

	v, err := loaded.Get("str")
	require.NoError(t, err)
	require.Equal(t, "hello", v.Str)

	v, err = loaded.Get("list")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, v.List)

	v, err = loaded.Get("hash")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"f1": "v1", "f2": "v2"}, v.Hash)

	_, dl, has, err := loaded.GetValAndDeadline("ttl")
	require.NoError(t, err)
	require.True(t, has)
	require.InDelta(t, 99999999999.5, dl, 0.0001)
}

func TestLoadMissingKeysFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "storage")

	s := New()
	require.NoError(t, s.Load(prefix))
	_, err := s.Get("anything")
	require.ErrorIs(t, err, ErrKeyError)
}

func TestLoadMissingMoesFileIsError(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "storage")

	require.NoError(t, os.WriteFile(KeysFileName(prefix), []byte{}, 0644))

	s := New()
	err := s.Load(prefix)
	require.Error(t, err)
	var target *StorageFileError
	require.ErrorAs(t, err, &target)
}
