package instancelock

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInstanceLock_BasicAcquisition(t *testing.T) {
	tmpDir := t.TempDir()

	lock := NewInstanceLock(tmpDir)

	acquired, err := lock.TryAcquire()
	if err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}
	if !acquired {
		t.Fatal("Expected to acquire lock, but failed")
	}

	// The lock file carries the server's own name so other MCP servers
	// locking the same directory do not collide with ours
	if got := filepath.Base(lock.GetLockFilePath()); got != LockFileName {
		t.Fatalf("Lock file name = %q, want %q", got, LockFileName)
	}
	if got := lock.GetLockFilePath(); got != filepath.Join(tmpDir, "nautobot-mcp.lock") {
		t.Fatalf("Lock file path = %q, want it inside %q", got, tmpDir)
	}

	if _, err := os.Stat(lock.GetLockFilePath()); os.IsNotExist(err) {
		t.Fatal("Lock file was not created")
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Failed to release lock: %v", err)
	}

	if _, err := os.Stat(lock.GetLockFilePath()); !os.IsNotExist(err) {
		t.Fatal("Lock file was not removed after release")
	}
}

func TestInstanceLock_PreventDuplicate(t *testing.T) {
	tmpDir := t.TempDir()

	lock1 := NewInstanceLock(tmpDir)
	acquired, err := lock1.TryAcquire()
	if err != nil {
		t.Fatalf("Failed to acquire first lock: %v", err)
	}
	if !acquired {
		t.Fatal("Expected to acquire first lock")
	}
	defer lock1.Release()

	// A second server process against the same directory must be refused
	lock2 := NewInstanceLock(tmpDir)
	acquired, err = lock2.TryAcquire()
	if err == nil {
		t.Fatal("Expected error when trying to acquire second lock")
	}
	if acquired {
		t.Fatal("Should not have acquired second lock")
	}
}

func TestInstanceLock_StaleLockRemoval(t *testing.T) {
	tmpDir := t.TempDir()
	lockPath := filepath.Join(tmpDir, LockFileName)

	// Leftover lock from a crashed server: dead PID, old mtime
	stalePID := "999999"
	if err := os.WriteFile(lockPath, []byte(stalePID), 0600); err != nil {
		t.Fatalf("Failed to create stale lock file: %v", err)
	}
	oldTime := time.Now().Add(-10 * time.Minute)
	if err := os.Chtimes(lockPath, oldTime, oldTime); err != nil {
		t.Fatalf("Failed to change lock file time: %v", err)
	}

	// A fresh server takes over the stale lock instead of refusing to start
	lock := NewInstanceLock(tmpDir)
	acquired, err := lock.TryAcquire()
	if err != nil {
		t.Fatalf("Failed to acquire lock after stale lock: %v", err)
	}
	if !acquired {
		t.Fatal("Expected to acquire lock after removing stale lock")
	}

	lock.Release()
}

func TestInstanceLock_AcquireWithRetry(t *testing.T) {
	tmpDir := t.TempDir()

	lock := NewInstanceLock(tmpDir)

	// Retrying acquisition, the way server startup does
	if err := lock.Acquire(3, 100*time.Millisecond); err != nil {
		t.Fatalf("Failed to acquire lock with retry: %v", err)
	}

	if !lock.IsAcquired() {
		t.Fatal("Lock should be acquired")
	}

	lock.Release()
}

func TestInstanceLock_MultipleRelease(t *testing.T) {
	tmpDir := t.TempDir()

	lock := NewInstanceLock(tmpDir)
	lock.TryAcquire()

	if err := lock.Release(); err != nil {
		t.Fatalf("Failed to release lock: %v", err)
	}

	// Releasing again must stay a no-op; the deferred release in main can
	// run after a release on the shutdown path
	if err := lock.Release(); err != nil {
		t.Fatalf("Second release should not error: %v", err)
	}
}

func TestCheckRunningInstance(t *testing.T) {
	tmpDir := t.TempDir()

	// The pre-flight check main runs before acquiring: nothing running yet
	running, pid, err := CheckRunningInstance(tmpDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if running {
		t.Fatal("No instance should be running")
	}
	if pid != 0 {
		t.Fatal("PID should be 0 when no instance running")
	}

	lock := NewInstanceLock(tmpDir)
	lock.TryAcquire()
	defer lock.Release()

	// A held lock reports this process as the running server
	running, pid, err = CheckRunningInstance(tmpDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !running {
		t.Fatal("Instance should be detected as running")
	}
	if pid != os.Getpid() {
		t.Fatalf("Expected PID %d, got %d", os.Getpid(), pid)
	}
}

func TestInstanceLock_IsAcquired(t *testing.T) {
	tmpDir := t.TempDir()

	lock := NewInstanceLock(tmpDir)

	if lock.IsAcquired() {
		t.Fatal("Lock should not be acquired initially")
	}

	lock.TryAcquire()

	if !lock.IsAcquired() {
		t.Fatal("Lock should be acquired")
	}

	lock.Release()

	if lock.IsAcquired() {
		t.Fatal("Lock should not be acquired after release")
	}
}
