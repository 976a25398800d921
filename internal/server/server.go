package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/netutil"

	"haisou/internal/config"
)

func init() {
	// デバッグ出力が標準出力のアクセスログに混ざらないようにする
	gin.SetMode(gin.ReleaseMode)
}

// Server は開発用HTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	engine     *gin.Engine
	httpServer *http.Server
	out        io.Writer // 起動メッセージとアクセスログの出力先
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config, out io.Writer) *Server {
	engine := newEngine(cfg.Static.Root, out)

	return &Server{
		config: cfg,
		engine: engine,
		out:    out,
		httpServer: &http.Server{
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// newEngine はミドルウェアと静的ファイルハンドラを組み立てる
func newEngine(root string, out io.Writer) *gin.Engine {
	engine := gin.New()
	engine.SetHTMLTemplate(loadTemplates())

	// アクセスログ → CORSヘッダー → パニック復旧 の順で適用
	engine.Use(accessLogger(out), corsHeaders(), gin.Recovery())

	// すべてのパスを静的ファイルハンドラで処理する
	// NoRouteはステータスが404で始まるため、通常のメソッドはルートとして登録する
	static := NewStaticHandler(root)
	engine.Any("/*filepath", static.Handle)
	engine.NoRoute(static.Handle)

	return engine
}

// Handler はサーバーのHTTPハンドラを返す
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Listen は設定されたアドレスでリッスンを開始する
// 返されたリスナーの所有権は呼び出し側に移る
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.config.ServerAddress())
	if err != nil {
		return nil, fmt.Errorf("ポートのバインドに失敗: %w", err)
	}

	if s.config.Server.MaxConns > 0 {
		ln = netutil.LimitListener(ln, s.config.Server.MaxConns)
	}

	return ln, nil
}

// Start はリッスンを開始し、停止されるまでリクエストを処理する
func (s *Server) Start(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve はリスナーでリクエストを処理する
// コンテキストのキャンセルかSIGINT/SIGTERMの受信でグレースフルに停止する
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	serveCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveCh <- fmt.Errorf("サーバーの実行に失敗: %w", err)
		}
	}()

	s.printBanner(ln.Addr())

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-serveCh:
		return err
	}

	// グレースフルシャットダウン（待機中に再度シグナルを受けたら強制終了）
	return s.shutdown(sigCh)
}

// Shutdown は処理中のリクエストの完了を待ってサーバーを停止する
// 待機時間を過ぎた接続は切断する
func (s *Server) Shutdown() error {
	return s.shutdown(nil)
}

// shutdown はforceから値を受け取った時点で待機を打ち切る
func (s *Server) shutdown(force <-chan os.Signal) error {
	log.Println("サーバーをシャットダウンしています...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if timeout := s.config.Server.ShutdownTimeout; timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, timeout)
		defer timeoutCancel()
	}

	go func() {
		select {
		case sig := <-force:
			log.Printf("シグナルを再度受信したため強制終了します: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("処理中の接続を切断します: %v", err)
		if err := s.httpServer.Close(); err != nil {
			log.Printf("接続の切断に失敗: %v", err)
		}
	}

	fmt.Fprint(s.out, "\n\n👋 サーバーを停止しました\n")
	return nil
}

// printBanner は起動メッセージを表示する
func (s *Server) printBanner(addr net.Addr) {
	port := s.config.Server.Port
	if tcpAddr, ok := addr.(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}

	fmt.Fprintf(s.out, "🚀 %sを起動しました\n", config.ServiceName)
	fmt.Fprintf(s.out, "📍 アクセスURL: %s\n", config.AccessURL(port))
	fmt.Fprint(s.out, "🛑 停止するには Ctrl+C を押してください\n\n")
}
