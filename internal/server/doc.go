// Package server は、開発用の静的ファイルサーバーを提供します。
//
// 作業ディレクトリ配下のHTML/CSS/JSを http://localhost から配信し、
// file:// スキームでのブラウザ制限を回避するためのものです。
//
// 責務:
//   - リスナーの作成と所有、起動メッセージの表示
//   - 静的ファイルとディレクトリ一覧の配信（net/httpのFileServerに委譲）
//   - すべてのレスポンスへのCORSヘッダーの付与
//   - リクエストごとのアクセスログ出力
//   - シグナルまたはコンテキストによるグレースフルシャットダウン
//
// 仕様:
//   - ルーティングとミドルウェアはgin-gonic/ginを使用
//   - GET/HEAD以外のメソッドは501 Not Implementedを返す
//   - CORSポリシーは開発用途のため全許可
package server
