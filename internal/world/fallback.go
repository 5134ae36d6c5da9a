package world

import (
	"github.com/KirkDiggler/jp-mud/internal/entities"
)

// OfflineWorld is the single-location village used when the game server cannot
// be reached. Its start location deliberately has no connections.
func OfflineWorld() *entities.World {
	w := entities.NewWorld()
	w.Locations[entities.StartLocationID] = emptyLocation(entities.StartLocationID,
		"Offline Starting Village",
		"オフライン開始村",
		"A simple village created for offline play. The server couldn't be reached, but you can still explore this basic world.",
		"オフラインプレイ用の簡単な村。サーバーに接続できませんでしたが、この基本的な世界を探索できます。")
	return w
}

// EmergencyWorld replaces a world payload that could not be decoded
func EmergencyWorld() *entities.World {
	w := entities.NewWorld()
	w.Locations[entities.StartLocationID] = emptyLocation(entities.StartLocationID,
		"Emergency Fallback Location",
		"緊急避難場所",
		"Something went wrong with the world generation. This is a fallback location.",
		"世界の生成に問題が発生しました。これは緊急避難場所です。")
	Repair(w)
	return w
}
