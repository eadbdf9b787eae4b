package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/miqu3iasg/cmj/internal/dto"
	"github.com/miqu3iasg/cmj/internal/model"
	"github.com/miqu3iasg/cmj/internal/repository"
)

// ── 测试辅助 ──

func setupTestUserService() (UserService, *mockUserRepo, *mockSettingsRepo) {
	userRepo := newMockUserRepo()
	settingsRepo := newMockSettingsRepo()
	repo := &repository.Repository{
		User:          userRepo,
		Settings:      settingsRepo,
		ScheduleEntry: newMockScheduleEntryRepo(),
		Campus:        newMockCampusRepo(),
	}
	svc := NewUserService(repo, zap.NewNop())
	return svc, userRepo, settingsRepo
}

func seedUser(userRepo *mockUserRepo, userID, name, role string) *model.User {
	user := &model.User{
		UserID:       userID,
		Name:         name,
		Email:        userID + "@ufrb.edu.br",
		PasswordHash: "hash",
		Role:         role,
		IsActive:     true,
	}
	userRepo.users[userID] = user
	return user
}

// ── List 测试 ──

func TestUserService_List_FilterByRole(t *testing.T) {
	svc, userRepo, _ := setupTestUserService()
	seedUser(userRepo, "uid-001", "Maria", "student")
	seedUser(userRepo, "uid-002", "João", "admin")

	req := &dto.UserListRequest{Role: "student"}
	users, total, err := svc.List(context.Background(), req)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 1 || len(users) != 1 {
		t.Fatalf("期望 1 个学生用户，实际 total=%d len=%d", total, len(users))
	}
	if users[0].Name != "Maria" {
		t.Errorf("期望 Maria，实际=%s", users[0].Name)
	}
}

func TestUserService_List_Pagination(t *testing.T) {
	svc, userRepo, _ := setupTestUserService()
	for i := 0; i < 25; i++ {
		seedUser(userRepo, "uid-"+string(rune('a'+i)), "Aluno", "student")
	}

	req := &dto.UserListRequest{}
	req.Page = 2
	req.PageSize = 10
	users, total, err := svc.List(context.Background(), req)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 25 {
		t.Errorf("期望 total=25，实际=%d", total)
	}
	if len(users) != 10 {
		t.Errorf("期望第二页 10 条，实际=%d", len(users))
	}
}

// ── Update 测试 ──

func TestUserService_Update_Self(t *testing.T) {
	svc, userRepo, _ := setupTestUserService()
	seedUser(userRepo, "uid-001", "Maria", "student")

	name := "Maria Santos"
	resp, err := svc.Update(context.Background(), "uid-001", &dto.UpdateUserRequest{Name: &name}, "uid-001", "student")
	if err != nil {
		t.Fatalf("本人修改应成功: %v", err)
	}
	if resp.Name != "Maria Santos" {
		t.Errorf("期望更新后 Name=Maria Santos，实际=%s", resp.Name)
	}
}

func TestUserService_Update_AdminCanEditOthers(t *testing.T) {
	svc, userRepo, _ := setupTestUserService()
	seedUser(userRepo, "uid-001", "Maria", "student")
	seedUser(userRepo, "uid-admin", "Admin", "admin")

	course := "Engenharia de Computação"
	_, err := svc.Update(context.Background(), "uid-001", &dto.UpdateUserRequest{Course: &course}, "uid-admin", "admin")
	if err != nil {
		t.Errorf("admin 修改他人应成功: %v", err)
	}
}

func TestUserService_Update_ForbiddenForOthers(t *testing.T) {
	svc, userRepo, _ := setupTestUserService()
	seedUser(userRepo, "uid-001", "Maria", "student")
	seedUser(userRepo, "uid-002", "João", "student")

	name := "Hacker"
	_, err := svc.Update(context.Background(), "uid-001", &dto.UpdateUserRequest{Name: &name}, "uid-002", "student")
	if !errors.Is(err, ErrForbiddenOperation) {
		t.Errorf("期望 ErrForbiddenOperation，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestUserService_Delete_Success(t *testing.T) {
	svc, userRepo, _ := setupTestUserService()
	seedUser(userRepo, "uid-001", "Maria", "student")

	if err := svc.Delete(context.Background(), "uid-001", "uid-admin"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := userRepo.users["uid-001"]; ok {
		t.Error("用户应已删除")
	}
}

func TestUserService_Delete_CannotDeleteSelf(t *testing.T) {
	svc, userRepo, _ := setupTestUserService()
	seedUser(userRepo, "uid-001", "Maria", "student")

	if err := svc.Delete(context.Background(), "uid-001", "uid-001"); !errors.Is(err, ErrCannotDeleteSelf) {
		t.Errorf("期望 ErrCannotDeleteSelf，实际: %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, _, _ := setupTestUserService()

	if err := svc.Delete(context.Background(), "nonexistent", "uid-admin"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// ── Settings 测试 ──

func TestUserService_GetSettings_DefaultsWhenUnset(t *testing.T) {
	svc, _, _ := setupTestUserService()

	resp, err := svc.GetSettings(context.Background(), "uid-001")
	if err != nil {
		t.Fatalf("GetSettings 应成功: %v", err)
	}
	if resp.Theme != "dark" || resp.Language != "pt-BR" {
		t.Errorf("未保存过设置时应返回默认值，实际 theme=%s language=%s", resp.Theme, resp.Language)
	}
	if !resp.ClassReminders {
		t.Error("上课提醒默认开启")
	}
	if resp.MenuUpdates {
		t.Error("菜单提醒默认关闭")
	}
}

func TestUserService_UpdateSettings_PartialUpdate(t *testing.T) {
	svc, _, settingsRepo := setupTestUserService()

	theme := "light"
	resp, err := svc.UpdateSettings(context.Background(), "uid-001", &dto.UpdateSettingsRequest{Theme: &theme})
	if err != nil {
		t.Fatalf("UpdateSettings 应成功: %v", err)
	}
	if resp.Theme != "light" {
		t.Errorf("期望 theme=light，实际=%s", resp.Theme)
	}
	// 未传字段保持默认
	if resp.Language != "pt-BR" {
		t.Errorf("未修改字段应保持默认，实际 language=%s", resp.Language)
	}

	stored := settingsRepo.settings["uid-001"]
	if stored == nil || stored.Theme != "light" {
		t.Error("设置应已持久化")
	}
}

func TestUserService_UpdateSettings_IdempotentUpsert(t *testing.T) {
	svc, _, _ := setupTestUserService()

	lang := "en"
	if _, err := svc.UpdateSettings(context.Background(), "uid-001", &dto.UpdateSettingsRequest{Language: &lang}); err != nil {
		t.Fatalf("首次保存应成功: %v", err)
	}

	off := false
	resp, err := svc.UpdateSettings(context.Background(), "uid-001", &dto.UpdateSettingsRequest{PushNotifications: &off})
	if err != nil {
		t.Fatalf("二次保存应成功: %v", err)
	}
	if resp.Language != "en" {
		t.Errorf("二次保存应保留之前的修改，实际 language=%s", resp.Language)
	}
	if resp.PushNotifications {
		t.Error("推送通知应已关闭")
	}
}
