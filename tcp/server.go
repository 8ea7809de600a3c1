package tcp

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vnmea/codec"
	"github.com/vuuvv/vnmea/log"
	"github.com/vuuvv/vnmea/utils"
	"go.uber.org/zap"
)

// Handler receives every scan result of a connection, on that connection's
// goroutine. conn.Parser() holds the state the sentence was decoded into.
type Handler func(conn *Connection, result *codec.ScanResult) error

// Server accepts NMEA talkers over TCP. Each connection is scanned into its
// own parser.Context.
type Server struct {
	config           *ServerConfig
	handler          Handler
	listener         net.Listener
	connections      sync.Map
	wg               sync.WaitGroup
	ctx              context.Context
	cancel           context.CancelFunc
	connectionCounts int32
}

func NewServer(config *ServerConfig, handler Handler) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		config:  config,
		handler: handler,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *Server) Config() *ServerConfig {
	return s.config
}

// Listen sets up the config and binds its address; Addr is valid afterwards.
func (s *Server) Listen() error {
	if s.listener != nil {
		return errors.New("tcp server: already listening")
	}
	if err := s.config.Setup(); err != nil {
		return err
	}
	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return errors.Wrapf(err, "failed to start listener: %s", s.config.Address)
	}
	s.listener = listener
	log.Info("TCP server listening", zap.String("addr", listener.Addr().String()))
	return nil
}

func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start listens and serves until Stop.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Serve runs the accept loop on a listener opened by Listen. It returns nil
// once Stop has been called.
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("tcp server: Listen must be called before Serve")
	}

	s.wg.Add(1)
	go s.connectionCleaner()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.ctx.Done():
				return nil
			default:
			}
			if utils.IsClosedConnError(err) {
				return nil
			}
			log.Warn(errors.Wrap(err, "Accept error"))
			continue
		}

		if !s.acceptConnection() {
			log.Warn("Max connections reached, rejecting", zap.String("addr", conn.RemoteAddr().String()))
			utils.SafeCloseConn(conn)
			continue
		}

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

func (s *Server) acceptConnection() bool {
	for {
		current := atomic.LoadInt32(&s.connectionCounts)
		if current >= int32(s.config.MaxConnections) {
			return false
		}
		if atomic.CompareAndSwapInt32(&s.connectionCounts, current, current+1) {
			return true
		}
	}
}

func (s *Server) releaseConnection() {
	atomic.AddInt32(&s.connectionCounts, -1)
}

// ConnectionCount is the number of connections currently being served.
func (s *Server) ConnectionCount() int {
	return int(atomic.LoadInt32(&s.connectionCounts))
}

func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer s.releaseConnection()
	defer utils.SafeCloseConn(conn)
	defer utils.NormalRecover()

	err := utils.OptimalTcpConn(conn, s.config.ReadBufferSize, s.config.WriteBufferSize)
	if err != nil {
		log.Warn(errors.Wrap(err, "OptimalTcpConn fail"))
		return
	}

	c, err := NewConnection(s, conn)
	if err != nil {
		log.Warn(errors.Wrap(err, "NewConnection fail"))
		return
	}
	defer s.RemoveConnection(c)
	if err = c.Scan(); err != nil {
		log.Warn(errors.Wrap(err, "Scan fail"), c.zapFields()...)
	}
}

func (s *Server) AddConnection(conn *Connection) {
	s.connections.Store(conn.key, conn)
}

func (s *Server) RemoveConnection(conn *Connection) {
	s.connections.Delete(conn.key)
	conn.Close()
}

func (s *Server) GetConnection(key string) *Connection {
	conn, ok := s.connections.Load(key)
	if !ok {
		return nil
	}
	return conn.(*Connection)
}

// Connections snapshots the live connections.
func (s *Server) Connections() []*Connection {
	var res []*Connection
	s.connections.Range(func(_, value any) bool {
		if conn, ok := value.(*Connection); ok {
			res = append(res, conn)
		}
		return true
	})
	return res
}

// connectionCleaner 定期关闭空闲连接
func (s *Server) connectionCleaner() {
	defer s.wg.Done()
	defer utils.NormalRecover()
	ticker := time.NewTicker(s.config.CleanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.clean(time.Now())
		}
	}
}

func (s *Server) clean(now time.Time) {
	count := 0
	for _, conn := range s.Connections() {
		if s.config.IdleTimeout > 0 && now.Sub(conn.LastActiveTime()) > s.config.IdleTimeout {
			log.Info("Idle timeout, closing connection", conn.zapFields()...)
			conn.Close()
			continue
		}
		count++
	}
	log.Debug("Active connections", zap.Int("count", count))
}

func (s *Server) Stop() error {
	log.Info("Stopping TCP server")
	s.cancel()

	if s.listener != nil {
		if err := s.listener.Close(); err != nil && !utils.IsClosedConnError(err) {
			log.Warn(errors.Wrap(err, "Error closing listener"))
		}
	}

	for _, conn := range s.Connections() {
		conn.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Server shutdown complete")
		return nil
	case <-time.After(s.config.StopTimeout):
		return errors.Errorf("shutdown timeout")
	}
}
