package main

import (
	"context"
	"log"
	"os"

	"haisou/internal/config"
	"haisou/internal/server"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// サーバーを作成（起動メッセージとアクセスログは標準出力へ）
	srv := server.New(cfg, os.Stdout)

	// Ctrl+Cで停止するまでリクエストを処理する
	if err := srv.Start(context.Background()); err != nil {
		log.Fatalf("サーバーの実行に失敗しました: %v", err)
	}
}
