package main

// ============================================================================
// 收藏集合
// ============================================================================

// FavoriteSet 有序收藏集合，保持加入顺序（收藏模式下按此顺序列出）
type FavoriteSet struct {
	ids   []string
	index map[string]struct{}
	file  string // 持久化文件路径，为空表示不落盘
}

// newFavoriteSet 用初始代码创建收藏集合（重复代码只保留第一次出现）
func newFavoriteSet(ids []string) *FavoriteSet {
	s := &FavoriteSet{
		ids:   make([]string, 0, len(ids)),
		index: make(map[string]struct{}, len(ids)),
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, exists := s.index[id]; exists {
			continue
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
	return s
}

// Has 是否已收藏
func (s *FavoriteSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len 收藏数量
func (s *FavoriteSet) Len() int {
	return len(s.ids)
}

// List 按加入顺序返回收藏副本
func (s *FavoriteSet) List() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Toggle 切换收藏状态并返回新的状态。取消收藏从原位置移除，重新收藏追加到末尾
func (s *FavoriteSet) Toggle(id string) bool {
	var favorite bool
	if s.Has(id) {
		delete(s.index, id)
		for i, existing := range s.ids {
			if existing == id {
				s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
				break
			}
		}
		logInfo("log.favorites.removed", id)
	} else {
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
		favorite = true
		logInfo("log.favorites.added", id)
	}

	if s.file != "" {
		if err := saveFavorites(s.file, s); err != nil {
			logError("log.favorites.saveFail", s.file, err)
		}
	}
	return favorite
}
