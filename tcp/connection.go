package tcp

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/vuuvv/vnmea/codec"
	"github.com/vuuvv/vnmea/log"
	"github.com/vuuvv/vnmea/parser"
	"github.com/vuuvv/vnmea/utils"
	"go.uber.org/zap"
)

type Connection struct {
	server         *Server
	conn           net.Conn
	key            string
	lastActiveTime time.Time
	mu             sync.Mutex
	ctx            context.Context
	cancel         context.CancelFunc
	parser         parser.Context
	codec          *codec.Codec
}

// NewConnection registers conn with server and initializes its parser from
// the server config. The parser's error callback is tagged with the
// connection key.
func NewConnection(server *Server, conn net.Conn) (*Connection, error) {
	ctx, cancel := context.WithCancel(server.ctx)
	c := &Connection{
		key:            utils.GenId(),
		server:         server,
		conn:           conn,
		lastActiveTime: time.Now(),
		ctx:            ctx,
		cancel:         cancel,
	}
	cfg := server.config.ParserConfig()
	if cfg.ErrorCallback != nil && cfg.ErrorCallbackUserData == nil {
		cfg.ErrorCallbackUserData = c.key
	}
	if err := c.parser.Init(cfg); err != nil {
		cancel()
		return nil, err
	}
	c.codec = codec.NewCodec(&c.parser).Rule(&server.config.Framing).Filter(server.config.filter)
	server.AddConnection(c)
	return c, nil
}

func (this *Connection) Key() string {
	return this.key
}

func (this *Connection) RemoteAddr() string {
	return this.conn.RemoteAddr().String()
}

// Parser is the connection's parser state. Only read it from the handler.
func (this *Connection) Parser() *parser.Context {
	return &this.parser
}

func (this *Connection) Histories() []*codec.ScanResult {
	return this.codec.Histories()
}

func (this *Connection) Write(data []byte) (int, error) {
	this.mu.Lock()
	defer this.mu.Unlock()
	return this.conn.Write(data)
}

func (this *Connection) UpdateActiveTime() {
	this.mu.Lock()
	this.lastActiveTime = time.Now()
	this.mu.Unlock()
}

func (this *Connection) LastActiveTime() time.Time {
	this.mu.Lock()
	defer this.mu.Unlock()
	return this.lastActiveTime
}

// Scan blocks until the peer disconnects or the connection is closed. A
// read interrupted by Close is not an error.
func (this *Connection) Scan() error {
	go this.checkCancel()

	err := this.codec.Stream(this.conn).Scan(this.handle)
	if this.ctx.Err() != nil {
		err = nil
	}
	this.cancel()
	return err
}

func (this *Connection) handle(result *codec.ScanResult) error {
	this.UpdateActiveTime()
	if this.server.handler == nil {
		return nil
	}
	return this.server.handler(this, result)
}

func (this *Connection) checkCancel() {
	<-this.ctx.Done()
	// 中断阻塞中的 Read
	if err := this.conn.SetReadDeadline(time.Now()); err != nil && !utils.IsClosedConnError(err) {
		log.Error(err, this.zapFields()...)
	}
}

func (this *Connection) zapFields(fields ...zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("addr", this.RemoteAddr()),
		zap.String("key", this.key),
	}, fields...)
}

func (this *Connection) Close() {
	this.cancel()
	utils.SafeCloseConn(this.conn)
}
