package cache

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/customs-bot/internal/entity/user"
)

type hostsConfig []string

func (h hostsConfig) Hosts() []string { return h }

// memcachedServer speaks the subset of the memcached text protocol the
// client uses: version, gets, set and delete.
type memcachedServer struct {
	mu          sync.Mutex
	values      map[string][]byte
	expirations map[string]int
}

func startMemcached(t *testing.T) (*memcachedServer, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	srv := &memcachedServer{values: map[string][]byte{}, expirations: map[string]int{}}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go srv.serve(conn)
		}
	}()
	return srv, ln.Addr().String()
}

func (s *memcachedServer) serve(conn net.Conn) {
	defer conn.Close()
	rw := bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))
	for {
		line, err := rw.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return
		}

		s.mu.Lock()
		switch fields[0] {
		case "version":
			fmt.Fprint(rw, "VERSION 1.6.21\r\n")
		case "get", "gets":
			for _, key := range fields[1:] {
				if value, ok := s.values[key]; ok {
					fmt.Fprintf(rw, "VALUE %s 0 %d 1\r\n%s\r\n", key, len(value), value)
				}
			}
			fmt.Fprint(rw, "END\r\n")
		case "set":
			exp, _ := strconv.Atoi(fields[3])
			size, _ := strconv.Atoi(fields[4])
			data := make([]byte, size+2)
			if _, err = io.ReadFull(rw, data); err != nil {
				s.mu.Unlock()
				return
			}
			s.values[fields[1]] = data[:size]
			s.expirations[fields[1]] = exp
			fmt.Fprint(rw, "STORED\r\n")
		case "delete":
			if _, ok := s.values[fields[1]]; ok {
				delete(s.values, fields[1])
				fmt.Fprint(rw, "DELETED\r\n")
			} else {
				fmt.Fprint(rw, "NOT_FOUND\r\n")
			}
		default:
			fmt.Fprint(rw, "ERROR\r\n")
		}
		s.mu.Unlock()

		if err = rw.Flush(); err != nil {
			return
		}
	}
}

func (s *memcachedServer) expiration(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expirations[key]
}

func Test_Memcache_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	srv, addr := startMemcached(t)
	mc, err := NewMemcache(hostsConfig{addr}, 30*time.Minute)
	require.NoError(t, err)

	empty, err := mc.GetSession(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, user.Session{}, empty)

	saved := user.Session{Step: user.StepEngineVolume, PurchasePrice: "1500000", Currency: "CNY", ManufactureDate: "01.03.2021"}
	require.NoError(t, mc.SaveSession(ctx, 42, saved))
	assert.Equal(t, 1800, srv.expiration("session:42"))

	got, err := mc.GetSession(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, mc.DropSession(ctx, 42))
	require.NoError(t, mc.DropSession(ctx, 42))

	got, err = mc.GetSession(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, user.Session{}, got)
}
